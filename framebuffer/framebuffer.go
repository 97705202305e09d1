// Package framebuffer provides access to the Sense HAT LED matrix framebuffer.
//
// The rpisense-fb kernel driver exposes the matrix as an 8x8, 16 bits per pixel
// framebuffer device. The device can be opened by name with [Open], or detected
// with [Find] which probes every /dev/fb* device for the Sense HAT identifier.
package framebuffer

import (
	"errors"
	"fmt"
)

// ID is the fixed screen info identifier of the Sense HAT framebuffer.
const ID = "RPi-Sense FB"

// Errors
var (
	ErrNotFound        = errors.New("framebuffer: no Sense HAT framebuffer found")
	ErrUnsupportedMode = errors.New("framebuffer: unsupported screen mode")
	ErrClosed          = errors.New("framebuffer: device closed")
	ErrNotSupported    = errors.New("framebuffer: not supported")
)

// Mode describes the screen geometry of a framebuffer.
type Mode struct {
	Width        int
	Height       int
	BitsPerPixel int
}

func (m Mode) String() string {
	return fmt.Sprintf("%dx%d %dbpp", m.Width, m.Height, m.BitsPerPixel)
}

// SenseHATMode is the only mode accepted by [Open].
var SenseHATMode = Mode{Width: 8, Height: 8, BitsPerPixel: 16}

// FrameSize is the size of a frame in bytes.
func (m Mode) FrameSize() int {
	return m.Width * m.Height * ((m.BitsPerPixel + 7) / 8)
}
