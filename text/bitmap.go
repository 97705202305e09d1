package text

import (
	"strings"

	"github.com/BeatGlow/sensehat"
	"github.com/BeatGlow/sensehat/pixel"
)

// glyphs returns the columns for every rune of the upper cased text that the
// font supports, other runes are dropped.
func glyphs(f Font, text string) [][]byte {
	var out [][]byte
	for _, r := range strings.ToUpper(text) {
		if columns, ok := f.Glyph(r); ok {
			out = append(out, columns)
		}
	}
	return out
}

// render lays out the glyphs with one column of spacing after every glyph,
// padded by a screen width of empty columns on both ends.
func render(glyphs [][]byte) *pixel.MonoVerticalLSBImage {
	width := sensehat.Width * 2
	for _, columns := range glyphs {
		width += len(columns) + 1
	}

	mask := pixel.NewMonoVerticalLSBImage(width, GlyphHeight)
	x := sensehat.Width
	for _, columns := range glyphs {
		copy(mask.Pix[x:], columns)
		x += len(columns) + 1
	}
	return mask
}

// window returns the screen at column offset, pixels outside the mask are
// background.
func window(mask *pixel.MonoVerticalLSBImage, offset int, fg, bg pixel.RGB) sensehat.Grid {
	g := sensehat.NewGrid(bg)
	for y := range g {
		for x := range g[y] {
			if mask.IsOn(offset+x, y) {
				g[y][x] = fg
			}
		}
	}
	return g
}
