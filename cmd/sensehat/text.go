package main

import (
	"os"
	"time"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/spf13/cobra"
	"golang.org/x/image/font"

	"github.com/BeatGlow/sensehat"
	"github.com/BeatGlow/sensehat/pixel"
	"github.com/BeatGlow/sensehat/text"
)

var (
	speedFlag    time.Duration
	fgFlag       string
	bgFlag       string
	fontFlag     string
	fontSizeFlag float64
)

func init() {
	flags := textCmd.Flags()
	flags.DurationVar(&speedFlag, "speed", text.DefaultOptions.ScrollSpeed, "time between scrolling one column")
	flags.StringVar(&fgFlag, "fg", text.DefaultOptions.TextColor.Hex(), "text color")
	flags.StringVar(&bgFlag, "bg", text.DefaultOptions.BackColor.Hex(), "background color")
	flags.StringVar(&fontFlag, "font", "", "TrueType font file (default: built-in 5x8 font)")
	flags.Float64Var(&fontSizeFlag, "font-size", 8, "TrueType font size in pixels")
	rootCmd.AddCommand(textCmd)
}

var textCmd = &cobra.Command{
	Use:   "text <message>",
	Short: "scroll a message across the matrix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		options := &text.Options{ScrollSpeed: speedFlag}
		var err error
		if options.TextColor, err = pixel.ParseColor(fgFlag); err != nil {
			return err
		}
		if options.BackColor, err = pixel.ParseColor(bgFlag); err != nil {
			return err
		}

		config := new(text.Config)
		*config = text.DefaultConfig
		if fontFlag != "" {
			if config.Font, err = loadFont(fontFlag, fontSizeFlag); err != nil {
				return err
			}
		}

		return withMatrix(func(m *sensehat.LEDMatrix) error {
			return text.NewRenderer(m, config).ShowMessage(cmd.Context(), args[0], options)
		})
	},
}

func loadFont(name string, size float64) (text.Font, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	f, err := freetype.ParseFont(b)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return text.NewFaceFont(face), nil
}
