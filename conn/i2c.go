// Package conn implements the I²C transport to the Sense HAT LED controller.
package conn

import (
	"fmt"
	"io"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
)

// I2C is a device on an I²C bus.
type I2C struct {
	bus    i2c.Bus
	closer io.Closer
	dev    *i2c.Dev
}

// OpenI2C opens the named I²C bus, an empty name opens the first available bus.
func OpenI2C(bus string, addr uint16) (*I2C, error) {
	b, err := i2creg.Open(bus)
	if err != nil {
		return nil, err
	}
	c := NewI2C(b, addr)
	c.closer = b
	return c, nil
}

// NewI2C uses an already opened bus, which is not closed by [I2C.Close].
func NewI2C(bus i2c.Bus, addr uint16) *I2C {
	return &I2C{
		bus: bus,
		dev: &i2c.Dev{Bus: bus, Addr: addr},
	}
}

func (c *I2C) String() string {
	return fmt.Sprintf("I²C bus %s addr %#02x", c.bus, c.dev.Addr)
}

func (c *I2C) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

func (c *I2C) Read(p []byte) (int, error) {
	return len(p), c.dev.Tx(nil, p)
}

func (c *I2C) Write(p []byte) (int, error) {
	return len(p), c.dev.Tx(p, nil)
}

// ReadRegister reads len(p) bytes starting at register reg.
func (c *I2C) ReadRegister(reg byte, p []byte) error {
	return c.dev.Tx([]byte{reg}, p)
}

// WriteRegister writes data starting at register reg.
func (c *I2C) WriteRegister(reg byte, data []byte) error {
	return c.dev.Tx(append([]byte{reg}, data...), nil)
}
