package sensehat

import (
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"log"

	"github.com/BeatGlow/sensehat/pixel"
)

type state uint8

const (
	uninitialized state = iota
	ready
	closed
)

// LEDMatrix is the Sense HAT 8x8 RGB LED matrix.
//
// The only pixel store is the packed RGB565 framebuffer: reads return the colors
// as they were quantized, rotated and dimmed by the last write.
//
// LEDMatrix is not safe for concurrent use.
type LEDMatrix struct {
	config   Config
	dev      Device
	fb       *pixel.CRGB16Image
	rotation Rotation
	lowLight bool
	state    state
}

// New returns an uninitialized LED matrix, call [LEDMatrix.Init] to open the device.
func New(config *Config) (*LEDMatrix, error) {
	if config == nil {
		config = new(Config)
		*config = DefaultConfig
	}
	if !config.Rotation.Valid() {
		return nil, invalidf("rotation %d", config.Rotation)
	}

	fb := pixel.NewCRGB16Image(Width, Height)
	fb.Order = binary.LittleEndian

	return &LEDMatrix{
		config:   *config,
		fb:       fb,
		rotation: config.Rotation,
		lowLight: config.LowLight,
	}, nil
}

// Init opens the device, it may only be called once. If the device is an
// [io.ReaderAt], the frame on the display is loaded as the initial pixel state.
func (m *LEDMatrix) Init() error {
	switch m.state {
	case ready:
		return ErrAlreadyInitialized
	case closed:
		return ErrClosed
	}

	open := m.config.Open
	if open == nil {
		open = OpenFramebuffer("")
	}
	dev, err := open()
	if err != nil {
		return &DeviceError{Op: "open", Err: err}
	}
	if r, ok := dev.(io.ReaderAt); ok {
		if err := m.load(r); err != nil {
			_ = dev.Close()
			return &DeviceError{Op: "read", Device: dev.String(), Err: err}
		}
	}
	if debug {
		log.Printf("sensehat: opened %s", dev)
	}

	m.dev = dev
	m.state = ready
	return nil
}

// Close the device. Closing an uninitialized or closed matrix does nothing.
func (m *LEDMatrix) Close() error {
	if m.state != ready {
		return nil
	}

	m.state = closed
	if err := m.dev.Close(); err != nil {
		return &DeviceError{Op: "close", Device: m.dev.String(), Err: err}
	}
	if debug {
		log.Printf("sensehat: closed %s", m.dev)
	}
	return nil
}

func (m *LEDMatrix) String() string {
	if m.dev == nil {
		return "sensehat.LEDMatrix{}"
	}
	return fmt.Sprintf("sensehat.LEDMatrix{%s}", m.dev)
}

// Bounds is the display bounding box.
func (m *LEDMatrix) Bounds() image.Rectangle {
	return Bounds
}

// SetPixel sets the pixel color at p.
func (m *LEDMatrix) SetPixel(p image.Point, c pixel.RGB) error {
	if err := m.check(); err != nil {
		return err
	}
	if err := validatePosition(p); err != nil {
		return err
	}
	m.set(p, c)
	return m.flush()
}

// Pixel returns the color of the pixel at p.
func (m *LEDMatrix) Pixel(p image.Point) (pixel.RGB, error) {
	if err := m.check(); err != nil {
		return pixel.RGB{}, err
	}
	if err := validatePosition(p); err != nil {
		return pixel.RGB{}, err
	}
	return m.at(p), nil
}

// SetPixels updates multiple pixels and flushes once. If any position is invalid,
// no pixel is changed.
func (m *LEDMatrix) SetPixels(pixels []Pixel) error {
	if err := m.check(); err != nil {
		return err
	}
	for _, px := range pixels {
		if err := validatePosition(px.Pos); err != nil {
			return err
		}
	}
	for _, px := range pixels {
		m.set(px.Pos, px.Color)
	}
	return m.flush()
}

// Fill the entire matrix with a single color.
func (m *LEDMatrix) Fill(c pixel.RGB) error {
	if err := m.check(); err != nil {
		return err
	}
	m.fb.Fill(m.dim(c))
	return m.flush()
}

// Clear turns all LEDs off.
func (m *LEDMatrix) Clear() error {
	return m.Fill(pixel.Off)
}

// SetMatrix sets all pixels from a Height by Width grid.
func (m *LEDMatrix) SetMatrix(g Grid) error {
	if err := m.check(); err != nil {
		return err
	}
	if err := g.validate(); err != nil {
		return err
	}
	for y, row := range g {
		for x, c := range row {
			m.set(image.Pt(x, y), c)
		}
	}
	return m.flush()
}

// Matrix returns all pixels.
func (m *LEDMatrix) Matrix() (Grid, error) {
	if err := m.check(); err != nil {
		return nil, err
	}
	g := NewGrid(pixel.Off)
	for y := range g {
		for x := range g[y] {
			g[y][x] = m.at(image.Pt(x, y))
		}
	}
	return g, nil
}

// SetImage draws the top left 8x8 pixels of img.
func (m *LEDMatrix) SetImage(img image.Image) error {
	return m.SetMatrix(GridFromImage(img))
}

// Rotation returns the active rotation.
func (m *LEDMatrix) Rotation() Rotation {
	return m.rotation
}

// SetRotation adjusts the pixel rotation of subsequent reads and writes, the
// current pixels are not moved.
func (m *LEDMatrix) SetRotation(r Rotation) error {
	if err := m.check(); err != nil {
		return err
	}
	if !r.Valid() {
		return invalidf("rotation %d", r)
	}
	m.rotation = r
	return nil
}

// LowLight reports if low-light mode is enabled.
func (m *LEDMatrix) LowLight() bool {
	return m.lowLight
}

// SetLowLight toggles low-light mode for subsequent writes, the current pixels
// are not rescaled.
func (m *LEDMatrix) SetLowLight(enabled bool) error {
	if err := m.check(); err != nil {
		return err
	}
	m.lowLight = enabled
	return nil
}

// FlipHorizontal mirrors the matrix left to right.
func (m *LEDMatrix) FlipHorizontal() error {
	g, err := m.Matrix()
	if err != nil {
		return err
	}
	for _, row := range g {
		for x := 0; x < Width/2; x++ {
			row[x], row[Width-1-x] = row[Width-1-x], row[x]
		}
	}
	return m.SetMatrix(g)
}

// FlipVertical mirrors the matrix top to bottom.
func (m *LEDMatrix) FlipVertical() error {
	g, err := m.Matrix()
	if err != nil {
		return err
	}
	for y := 0; y < Height/2; y++ {
		g[y], g[Height-1-y] = g[Height-1-y], g[y]
	}
	return m.SetMatrix(g)
}

func (m *LEDMatrix) check() error {
	switch m.state {
	case uninitialized:
		return ErrNotInitialized
	case closed:
		return ErrClosed
	default:
		return nil
	}
}

func validatePosition(p image.Point) error {
	if !p.In(Bounds) {
		return invalidf("position out of bounds: (%d, %d), valid range: 0-%d, 0-%d", p.X, p.Y, Width-1, Height-1)
	}
	return nil
}

func (m *LEDMatrix) dim(c pixel.RGB) pixel.RGB {
	if m.lowLight {
		return c.Dim()
	}
	return c
}

func (m *LEDMatrix) set(p image.Point, c pixel.RGB) {
	p = m.rotation.Apply(p)
	m.fb.Set(p.X, p.Y, m.dim(c))
}

func (m *LEDMatrix) at(p image.Point) pixel.RGB {
	p = m.rotation.Apply(p)
	return pixel.Unpack(m.fb.CRGB16At(p.X, p.Y).V)
}

func (m *LEDMatrix) load(r io.ReaderAt) error {
	frame := make([]byte, len(m.fb.Pix))
	n, err := r.ReadAt(frame, 0)
	if n == len(frame) {
		// io.EOF is allowed with a full read
		err = nil
	} else if err == nil {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return err
	}
	copy(m.fb.Pix, frame)
	return nil
}

// flush writes the whole framebuffer to the device.
func (m *LEDMatrix) flush() error {
	n, err := m.dev.WriteAt(m.fb.Pix, 0)
	if err == nil && n != len(m.fb.Pix) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return &DeviceError{Op: "write", Device: m.dev.String(), Err: err}
	}
	return nil
}
