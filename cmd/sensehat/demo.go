package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/BeatGlow/sensehat"
	"github.com/BeatGlow/sensehat/draw"
	"github.com/BeatGlow/sensehat/pixel"
)

var demoIntervalFlag time.Duration

// demos render frame n into dst.
var demos = map[string]func(dst *image.RGBA, n int){
	"basic":   basicDemo,
	"rainbow": rainbowDemo,
	"ball":    ballDemo,
}

func init() {
	demoCmd.Flags().DurationVar(&demoIntervalFlag, "interval", 50*time.Millisecond, "frame interval")
	rootCmd.AddCommand(demoCmd)
}

var demoCmd = &cobra.Command{
	Use:       "demo basic|rainbow|ball",
	Short:     "run an animation until interrupted",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"basic", "rainbow", "ball"},
	RunE: func(cmd *cobra.Command, args []string) error {
		demo, ok := demos[args[0]]
		if !ok {
			return fmt.Errorf("unknown demo %q", args[0])
		}
		return withMatrix(func(m *sensehat.LEDMatrix) error {
			return runDemo(cmd.Context(), m, demo, demoIntervalFlag)
		})
	},
}

func runDemo(ctx context.Context, m *sensehat.LEDMatrix, demo func(*image.RGBA, int), interval time.Duration) error {
	var (
		frame  = image.NewRGBA(sensehat.Bounds)
		ticker = time.NewTicker(interval)
	)
	defer ticker.Stop()

	fmt.Println("hit control-c to stop...")
	for n := 0; ; n++ {
		demo(frame, n)
		if err := m.SetImage(frame); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return m.Clear()
		case <-ticker.C:
		}
	}
}

// basicDemo draws a box around the edge with a moving gradient inside.
func basicDemo(dst *image.RGBA, n int) {
	r := dst.Bounds()
	for y := 1; y < r.Max.Y-1; y++ {
		for x := 1; x < r.Max.X-1; x++ {
			dst.Set(x, y, color.RGBA{
				R: uint8((x + y + n) * 16),
				G: uint8((x - y + n) * 16),
				B: uint8((x + y - n) * 16),
				A: 0xff,
			})
		}
	}
	draw.Rectangle(dst, r, pixel.White)
}

// rainbowDemo cycles the hue diagonally across the matrix.
func rainbowDemo(dst *image.RGBA, n int) {
	r := dst.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			hue := math.Mod(float64((x+y)*16+n*4), 360)
			red, grn, blu := colorful.Hsv(hue, 1, 1).RGB255()
			dst.Set(x, y, pixel.RGB{R: red, G: grn, B: blu})
		}
	}
}

// ballDemo bounces a ball off the edges.
func ballDemo(dst *image.RGBA, n int) {
	const radius = 1
	var (
		r    = dst.Bounds()
		span = r.Dx() - 2*radius - 1
		x    = bounce(n, span) + radius
		y    = bounce(n*2/3, span) + radius
	)
	draw.Draw(dst, r, image.NewUniform(pixel.Off), image.Point{}, draw.Src)
	draw.Disc(dst, image.Pt(x, y), radius, pixel.Orange)
}

// bounce returns the position in [0, span] of something moving one step per n.
func bounce(n, span int) int {
	n %= 2 * span
	if n > span {
		return 2*span - n
	}
	return n
}
