package pixel

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidColor is returned for color input outside of the 8-bit channel range.
var ErrInvalidColor = errors.New("pixel: invalid color")

// Models for the standard color types.
var (
	MonoModel   color.Model = color.ModelFunc(monoModel)
	RGBModel    color.Model = color.ModelFunc(rgbModel)
	CRGB16Model color.Model = color.ModelFunc(crgb16Model)
)

// Color presets.
var (
	Off     = RGB{}
	White   = RGB{0xff, 0xff, 0xff}
	Red     = RGB{0xff, 0x00, 0x00}
	Green   = RGB{0x00, 0xff, 0x00}
	Blue    = RGB{0x00, 0x00, 0xff}
	Yellow  = RGB{0xff, 0xff, 0x00}
	Cyan    = RGB{0x00, 0xff, 0xff}
	Magenta = RGB{0xff, 0x00, 0xff}
	Orange  = RGB{0xff, 0xa5, 0x00}
	Purple  = RGB{0x80, 0x00, 0x80}
)

// Presets maps lower case preset names to their color.
var Presets = map[string]RGB{
	"off":     Off,
	"white":   White,
	"red":     Red,
	"green":   Green,
	"blue":    Blue,
	"yellow":  Yellow,
	"cyan":    Cyan,
	"magenta": Magenta,
	"orange":  Orange,
	"purple":  Purple,
}

// Mono represents a 1-bit monochrome color.
type Mono struct {
	On bool
}

func (c Mono) RGBA() (r, g, b, a uint32) {
	if c.On {
		return 0xffff, 0xffff, 0xffff, 0xffff
	}
	return 0, 0, 0, 0xffff
}

func monoModel(c color.Color) color.Color {
	if _, ok := c.(Mono); ok {
		return c
	}
	r, g, b, _ := c.RGBA()

	// These coefficients (the fractions 0.299, 0.587 and 0.114) are the same
	// as those given by the JFIF specification and used by func RGBToYCbCr in
	// ycbcr.go.
	//
	// Note that 19595 + 38470 + 7471 equals 65536.
	//
	// The 31 is 16 + 15. The 16 is the same as used in RGBToYCbCr. The 15 is
	// because the return value is 1 bit color, not 16 bit color.
	y := (19595*r + 38470*g + 7471*b + 1<<15) >> 31

	return Mono{On: y != 0}
}

// RGB represents a 24-bit color with 8 bits per channel.
type RGB struct {
	R, G, B uint8
}

// RGBFromInts returns the color for untyped channel values, which must be in
// the range 0-255.
func RGBFromInts(r, g, b int) (RGB, error) {
	if !validChannel(r) || !validChannel(g) || !validChannel(b) {
		return RGB{}, fmt.Errorf("%w: (%d, %d, %d), values must be between 0-255", ErrInvalidColor, r, g, b)
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

func validChannel(v int) bool {
	return v >= 0 && v <= 0xff
}

func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Dim divides every channel by 8, rounding down.
func (c RGB) Dim() RGB {
	return RGB{R: c.R >> 3, G: c.G >> 3, B: c.B >> 3}
}

func (c RGB) String() string {
	return c.Hex()
}

func rgbModel(c color.Color) color.Color {
	switch c := c.(type) {
	case RGB:
		return c
	case CRGB16:
		return Unpack(c.V)
	case Mono:
		if c.On {
			return White
		}
		return Off
	default:
		r, g, b, _ := c.RGBA()
		return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
	}
}

// Pack quantizes c to a 5-6-5 bit value.
func Pack(c RGB) uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}

// Unpack expands a 5-6-5 bit value to 8 bits per channel, replicating the high
// bits into the low bits. This is lossy, Unpack(Pack(c)) is not always c.
func Unpack(v uint16) RGB {
	var (
		red = byte(v >> 11 & 0x1f)
		grn = byte(v >> 5 & 0x3f)
		blu = byte(v & 0x1f)
	)
	return RGB{
		R: red<<3 | red>>2,
		G: grn<<2 | grn>>4,
		B: blu<<3 | blu>>2,
	}
}

// CRGB16 represents a 16-bit 5-6-5 RGB color.
type CRGB16 struct {
	// CRed, 5, CGreen, 6, CBlue, 5
	V uint16
}

func (c CRGB16) RGBA() (r, g, b, a uint32) {
	// Build a 5- or 6-bit value at the top of the low byte of each component.
	red := (c.V & 0xF800) >> 8
	grn := (c.V & 0x07E0) >> 3
	blu := (c.V & 0x001F) << 3
	// Duplicate the high bits in the low bits.
	red |= red >> 5
	grn |= grn >> 6
	blu |= blu >> 5
	// Duplicate the whole value in the high byte.
	red |= red << 8
	grn |= grn << 8
	blu |= blu << 8
	return uint32(red), uint32(grn), uint32(blu), 0xffff
}

func crgb16Model(c color.Color) color.Color {
	switch c := c.(type) {
	case Mono:
		if c.On {
			return CRGB16{0xffff}
		}
		return CRGB16{}
	case RGB:
		return CRGB16{Pack(c)}
	case CRGB16:
		return c
	default:
		r, g, b, _ := c.RGBA()
		r = (r & 0xF800)
		g = (g & 0xFC00) >> 5
		b = (b & 0xF800) >> 11
		return CRGB16{uint16(r | g | b)}
	}
}
