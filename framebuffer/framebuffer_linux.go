package framebuffer

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/BeatGlow/sensehat/internal/ioctl"
)

const (
	// From <linux/fb.h>
	fbioGetVScreenInfo ioctl.Command = 0x4600
	fbioGetFScreenInfo ioctl.Command = 0x4602
)

var debug = os.Getenv("SENSEHAT_DEBUG") != ""

// Device is an opened Linux framebuffer device (fbdev).
type Device struct {
	f      *os.File
	name   string
	id     string
	mode   Mode
	closed bool
}

// Open a Linux framebuffer device by name, typically /dev/fb[0..x]. The device
// must have the 8x8 16bpp geometry of the Sense HAT.
func Open(name string) (*Device, error) {
	d, err := open(name)
	if err != nil {
		return nil, err
	}
	if d.mode != SenseHATMode {
		_ = d.f.Close()
		return nil, fmt.Errorf("%w: %s is %s, expected %s", ErrUnsupportedMode, name, d.mode, SenseHATMode)
	}
	return d, nil
}

// Find probes all framebuffer devices and opens the first one identifying as
// the Sense HAT.
func Find() (*Device, error) {
	names, err := filepath.Glob("/dev/fb*")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	for _, name := range names {
		d, err := open(name)
		if err != nil {
			if debug {
				log.Printf("framebuffer: skipping %s: %v", name, err)
			}
			continue
		}
		if debug {
			log.Printf("framebuffer: probed %s: %q %s", name, d.id, d.mode)
		}
		if d.id == ID && d.mode == SenseHATMode {
			return d, nil
		}
		_ = d.f.Close()
	}
	return nil, ErrNotFound
}

func open(name string) (*Device, error) {
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, err
	}

	var (
		info       linuxFrameBufferInfo
		screenInfo linuxVarScreenInfo
	)
	if err = ioctl.Do(f.Fd(), fbioGetFScreenInfo, &info); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err = ioctl.Do(f.Fd(), fbioGetVScreenInfo, &screenInfo); err != nil {
		_ = f.Close()
		return nil, err
	}

	return &Device{
		f:    f,
		name: name,
		id:   string(bytes.TrimRight(info.ID[:], "\x00")),
		mode: Mode{
			Width:        int(screenInfo.Xres),
			Height:       int(screenInfo.Yres),
			BitsPerPixel: int(screenInfo.BitsPerPixel),
		},
	}, nil
}

func (d *Device) String() string {
	return d.name
}

// ID is the framebuffer identification string.
func (d *Device) ID() string {
	return d.id
}

// Mode is the framebuffer screen geometry.
func (d *Device) Mode() Mode {
	return d.mode
}

// ReadAt reads the complete frame currently on the display.
func (d *Device) ReadAt(p []byte, off int64) (int, error) {
	if d.closed {
		return 0, ErrClosed
	}
	if err := d.checkFrame(p, off); err != nil {
		return 0, err
	}
	return d.f.ReadAt(p, off)
}

// WriteAt writes a complete frame, partial frames are rejected.
func (d *Device) WriteAt(p []byte, off int64) (int, error) {
	if d.closed {
		return 0, ErrClosed
	}
	if err := d.checkFrame(p, off); err != nil {
		return 0, err
	}
	return d.f.WriteAt(p, off)
}

func (d *Device) checkFrame(p []byte, off int64) error {
	if size := d.mode.FrameSize(); off != 0 || len(p) != size {
		return fmt.Errorf("framebuffer: expected a %d byte frame at offset 0, got %d bytes at offset %d", size, len(p), off)
	}
	return nil
}

// Close the framebuffer device.
func (d *Device) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	return d.f.Close()
}

type linuxFrameBufferInfo struct {
	ID           [16]byte  // Identification string eg "TT Builtin"
	SmemStart    uintptr   // Start of frame buffer mem
	SmemLen      uint32    // Length of frame buffer mem
	Type         uint32    // FB_TYPE_
	TypeAux      uint32    // Interleave for interleaved Planes
	Visual       uint32    // FB_VISUAL_
	Xpanstep     uint16    // Zero if no hardware panning
	Ypanstep     uint16    // Zero if no hardware panning
	Ywrapstep    uint16    // Zero if no hardware ywrap
	LineLength   uint32    // Length of a line in bytes
	MmioStart    uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen      uint32    // Length of Memory Mapped I/O
	Accel        uint32    // Type of acceleration available
	Capabilities uint16    // See FB_CAP_*
	Reserved     [2]uint16 // Reserved for future compatibility
}

// linuxBitField for the color
type linuxBitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

// linuxVarScreenInfo contains device independent changeable information about a frame buffer device and a specific video mode.
type linuxVarScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha linuxBitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}
