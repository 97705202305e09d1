package sensehat

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/i2c/i2ctest"

	"github.com/BeatGlow/sensehat/conn"
	"github.com/BeatGlow/sensehat/pixel"
)

func TestI2CDevice(t *testing.T) {
	bus := new(i2ctest.Record)
	dev := NewI2CDevice(conn.NewI2C(bus, DefaultI2CConfig.Addr))

	m, err := New(&Config{Open: func() (Device, error) { return dev, nil }})
	require.NoError(t, err)
	require.NoError(t, m.Init())

	require.NoError(t, m.SetPixel(image.Pt(1, 2), pixel.Red))
	require.NoError(t, m.SetPixel(image.Pt(3, 4), pixel.Green))
	require.NoError(t, m.SetPixel(image.Pt(7, 7), pixel.Blue))

	require.Len(t, bus.Ops, 3)
	for _, op := range bus.Ops {
		assert.Equal(t, uint16(0x46), op.Addr)
		require.Len(t, op.W, 1+i2cFrameSize)
		assert.Equal(t, byte(i2cFrameRegister), op.W[0])
	}

	frame := bus.Ops[2].W[1:]
	want := make([]byte, i2cFrameSize)
	want[2*i2cRowSize+1] = 0x1f
	want[4*i2cRowSize+Width+3] = 0x1f
	want[7*i2cRowSize+Width*2+7] = 0x1f
	assert.Equal(t, want, frame)

	require.NoError(t, m.Close())
	_, err = dev.WriteAt(make([]byte, FrameSize), 0)
	assert.ErrorIs(t, err, errI2CClosed)
}

func TestI2CDeviceFrameSize(t *testing.T) {
	bus := new(i2ctest.Record)
	dev := NewI2CDevice(conn.NewI2C(bus, 0x46))

	_, err := dev.WriteAt(make([]byte, FrameSize-2), 0)
	assert.Error(t, err)
	_, err = dev.WriteAt(make([]byte, FrameSize), 2)
	assert.Error(t, err)
	assert.Empty(t, bus.Ops)
}

func TestEncodeI2CFrame(t *testing.T) {
	src := make([]byte, FrameSize)
	// (0,0) is 0b10101_101010_10101
	src[0], src[1] = 0x55, 0xad

	dst := make([]byte, i2cFrameSize)
	encodeI2CFrame(dst, src)
	assert.Equal(t, byte(0x15), dst[0], "red")
	assert.Equal(t, byte(0x15), dst[Width], "green")
	assert.Equal(t, byte(0x15), dst[Width*2], "blue")
}
