package sensehat

import (
	"io"

	"github.com/BeatGlow/sensehat/framebuffer"
)

// Device is the boundary the LED matrix flushes its frames to.
//
// WriteAt is always called with a full frame of [FrameSize] bytes at offset 0,
// a short write is a failure. Writes after Close must fail.
type Device interface {
	io.WriterAt
	io.Closer
	String() string
}

// OpenFramebuffer returns an opener for the named framebuffer device, an empty
// name detects the Sense HAT framebuffer.
func OpenFramebuffer(name string) func() (Device, error) {
	return func() (Device, error) {
		var (
			fb  *framebuffer.Device
			err error
		)
		if name == "" {
			fb, err = framebuffer.Find()
		} else {
			fb, err = framebuffer.Open(name)
		}
		if err != nil {
			return nil, err
		}
		return fb, nil
	}
}

var _ Device = (*framebuffer.Device)(nil)
