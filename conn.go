package sensehat

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log"

	"github.com/BeatGlow/sensehat/conn"
)

// LED controller frame layout, per row 8 red, 8 green and 8 blue 5-bit values.
const (
	i2cFrameRegister = 0x00
	i2cRowSize       = Width * 3
	i2cFrameSize     = Height * i2cRowSize
)

var errI2CClosed = errors.New("sensehat: I²C device closed")

// I2CConfig describes the I²C bus configuration.
type I2CConfig struct {
	// Bus is the I²C bus name, use "" to use the first available bus.
	Bus string

	// Addr is the I²C address of the LED controller.
	Addr uint16
}

// DefaultI2CConfig are the default configuration values.
var DefaultI2CConfig = I2CConfig{
	Bus:  "",
	Addr: 0x46,
}

type i2cDevice struct {
	c      *conn.I2C
	frame  [i2cFrameSize]byte
	closed bool
}

// OpenI2C opens the LED controller on the I²C bus, bypassing the kernel framebuffer
// driver. The periph.io host drivers must be initialized before.
func OpenI2C(config *I2CConfig) (Device, error) {
	if config == nil {
		config = new(I2CConfig)
		*config = DefaultI2CConfig
	}
	if config.Addr == 0 {
		config.Addr = DefaultI2CConfig.Addr
	}

	c, err := conn.OpenI2C(config.Bus, config.Addr)
	if err != nil {
		return nil, err
	}
	if debug {
		log.Printf("sensehat: using %s", c)
	}
	return NewI2CDevice(c), nil
}

// NewI2CDevice returns a device writing frames to the LED controller over c.
func NewI2CDevice(c *conn.I2C) Device {
	return &i2cDevice{c: c}
}

func (d *i2cDevice) String() string {
	return d.c.String()
}

func (d *i2cDevice) WriteAt(p []byte, off int64) (int, error) {
	if d.closed {
		return 0, errI2CClosed
	}
	if off != 0 || len(p) != FrameSize {
		return 0, fmt.Errorf("sensehat: expected a %d byte frame at offset 0, got %d bytes at offset %d", FrameSize, len(p), off)
	}
	encodeI2CFrame(d.frame[:], p)
	if err := d.c.WriteRegister(i2cFrameRegister, d.frame[:]); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (d *i2cDevice) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	return d.c.Close()
}

// encodeI2CFrame converts a little endian RGB565 frame to the controller layout.
// Green is reduced to 5 bits.
func encodeI2CFrame(dst, src []byte) {
	for y := 0; y < Height; y++ {
		row := dst[y*i2cRowSize:]
		for x := 0; x < Width; x++ {
			v := binary.LittleEndian.Uint16(src[(y*Width+x)*2:])
			row[x] = byte(v>>11) & 0x1f
			row[Width+x] = byte(v>>6) & 0x1f
			row[Width*2+x] = byte(v) & 0x1f
		}
	}
}
