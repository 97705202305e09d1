package main

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/bmp"

	"github.com/BeatGlow/sensehat"
	"github.com/BeatGlow/sensehat/draw"
)

var containFlag bool

func init() {
	imageCmd.Flags().BoolVar(&containFlag, "contain", false, "keep the aspect ratio")
	rootCmd.AddCommand(imageCmd)
}

var imageCmd = &cobra.Command{
	Use:   "image <file>",
	Short: "show an image scaled to the matrix",
	Long:  "show an image scaled to the matrix, supported formats are PNG, JPEG, GIF, BMP and SVG",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := loadImage(args[0])
		if err != nil {
			return err
		}

		dst := image.NewRGBA(sensehat.Bounds)
		if containFlag {
			draw.Contain(dst, src)
		} else {
			draw.Fit(dst, src)
		}

		return withMatrix(func(m *sensehat.LEDMatrix) error {
			return m.SetImage(dst)
		})
	},
}

func loadImage(name string) (image.Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	if strings.EqualFold(filepath.Ext(name), ".svg") {
		return rasterizeSVG(f, sensehat.Width, sensehat.Height)
	}
	img, _, err := image.Decode(f)
	return img, err
}

// rasterizeSVG renders an SVG icon at the given size.
func rasterizeSVG(r io.Reader, w, h int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	var (
		img     = image.NewRGBA(image.Rect(0, 0, w, h))
		scanner = rasterx.NewScannerGV(w, h, img, img.Bounds())
		raster  = rasterx.NewDasher(w, h, scanner)
	)
	icon.Draw(raster, 1)
	return img, nil
}
