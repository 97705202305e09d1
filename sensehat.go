// Package sensehat drives the 8x8 RGB LED matrix of the Raspberry Pi Sense HAT.
//
// The matrix is exposed by the kernel as a 16-bit framebuffer device. An [LEDMatrix]
// keeps the pixel state in a 128 byte RGB565 buffer and flushes the whole buffer
// to the [Device] after every change.
package sensehat

import (
	"image"
	"os"
)

var debug bool

func init() {
	debug = os.Getenv("SENSEHAT_DEBUG") != ""
}

// Matrix dimensions.
const (
	Width     = 8
	Height    = 8
	Pixels    = Width * Height
	FrameSize = Pixels * 2 // bytes, 16 bits per pixel
)

// Bounds of the LED matrix.
var Bounds = image.Rect(0, 0, Width, Height)

// Config is the LED matrix configuration.
type Config struct {
	// Rotation of the display.
	Rotation Rotation

	// LowLight dims all colors written to the display.
	LowLight bool

	// Open is called once by [LEDMatrix.Init] to open the device, if nil the Sense
	// HAT framebuffer device is detected.
	Open func() (Device, error)
}

// DefaultConfig are the default configuration values.
var DefaultConfig = Config{
	Rotation: NoRotation,
}
