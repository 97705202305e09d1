package main

import (
	"fmt"
	"image"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/BeatGlow/sensehat"
	"github.com/BeatGlow/sensehat/pixel"
)

func init() {
	rootCmd.AddCommand(clearCmd, fillCmd, pixelCmd, flipCmd)
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "turn all LEDs off",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMatrix(func(m *sensehat.LEDMatrix) error {
			return m.Clear()
		})
	},
}

var fillCmd = &cobra.Command{
	Use:   "fill <color>",
	Short: "set all LEDs to a color",
	Long:  "set all LEDs to a color, the color is a preset name or #RRGGBB",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := pixel.ParseColor(args[0])
		if err != nil {
			return err
		}
		return withMatrix(func(m *sensehat.LEDMatrix) error {
			return m.Fill(c)
		})
	},
}

var pixelCmd = &cobra.Command{
	Use:   "pixel <x> <y> [color]",
	Short: "set or print the color of a single LED",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid x: %w", err)
		}
		y, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid y: %w", err)
		}
		p := image.Pt(x, y)

		if len(args) == 2 {
			return withMatrix(func(m *sensehat.LEDMatrix) error {
				c, err := m.Pixel(p)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), c)
				return nil
			})
		}

		c, err := pixel.ParseColor(args[2])
		if err != nil {
			return err
		}
		return withMatrix(func(m *sensehat.LEDMatrix) error {
			return m.SetPixel(p, c)
		})
	},
}

var flipCmd = &cobra.Command{
	Use:       "flip h|v",
	Short:     "mirror the matrix horizontally or vertically",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"h", "v"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMatrix(func(m *sensehat.LEDMatrix) error {
			if args[0] == "h" {
				return m.FlipHorizontal()
			}
			return m.FlipVertical()
		})
	},
}
