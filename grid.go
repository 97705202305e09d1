package sensehat

import (
	"image"

	"github.com/BeatGlow/sensehat/pixel"
)

// Grid is a matrix of colors indexed as [y][x].
type Grid [][]pixel.RGB

// NewGrid returns a Width by Height grid filled with c.
func NewGrid(c pixel.RGB) Grid {
	g := make(Grid, Height)
	for y := range g {
		g[y] = make([]pixel.RGB, Width)
		for x := range g[y] {
			g[y][x] = c
		}
	}
	return g
}

// GridFromImage returns the top left Width by Height pixels of img.
func GridFromImage(img image.Image) Grid {
	var (
		b = img.Bounds()
		g = NewGrid(pixel.Off)
	)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			p := image.Pt(b.Min.X+x, b.Min.Y+y)
			if p.In(b) {
				g[y][x] = pixel.RGBModel.Convert(img.At(p.X, p.Y)).(pixel.RGB)
			}
		}
	}
	return g
}

func (g Grid) validate() error {
	if len(g) != Height {
		return invalidf("matrix height %d, expected %d", len(g), Height)
	}
	for y, row := range g {
		if len(row) != Width {
			return invalidf("matrix width at row %d is %d, expected %d", y, len(row), Width)
		}
	}
	return nil
}

// Pixel is a color at a position.
type Pixel struct {
	Pos   image.Point
	Color pixel.RGB
}
