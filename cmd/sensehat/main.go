// Command sensehat controls the Sense HAT LED matrix.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/sensehat"
)

var (
	deviceFlag   string
	i2cFlag      bool
	i2cBusFlag   string
	i2cAddrFlag  uint16
	rotateFlag   int
	lowLightFlag bool
)

var rootCmd = &cobra.Command{
	Use:          "sensehat",
	Short:        "control the Sense HAT LED matrix",
	SilenceUsage: true,
}

func init() {
	log.SetFlags(0)
	log.SetPrefix("sensehat: ")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&deviceFlag, "device", "", "framebuffer device (default: detect)")
	flags.BoolVar(&i2cFlag, "i2c", false, "write to the LED controller over I²C instead of the framebuffer")
	flags.StringVar(&i2cBusFlag, "i2c-bus", sensehat.DefaultI2CConfig.Bus, "I²C bus (default: use first available)")
	flags.Uint16Var(&i2cAddrFlag, "i2c-addr", sensehat.DefaultI2CConfig.Addr, "I²C LED controller address")
	flags.IntVar(&rotateFlag, "rotate", 0, "rotation in degrees (0, 90, 180 or 270)")
	flags.BoolVar(&lowLightFlag, "low-light", false, "dim all colors")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func openMatrix() (*sensehat.LEDMatrix, error) {
	rotation, err := sensehat.ParseRotation(rotateFlag)
	if err != nil {
		return nil, err
	}

	config := &sensehat.Config{
		Rotation: rotation,
		LowLight: lowLightFlag,
		Open:     sensehat.OpenFramebuffer(deviceFlag),
	}
	if i2cFlag {
		if _, err = host.Init(); err != nil {
			return nil, err
		}
		config.Open = func() (sensehat.Device, error) {
			return sensehat.OpenI2C(&sensehat.I2CConfig{
				Bus:  i2cBusFlag,
				Addr: i2cAddrFlag,
			})
		}
	}

	m, err := sensehat.New(config)
	if err != nil {
		return nil, err
	}
	if err = m.Init(); err != nil {
		return nil, err
	}
	log.Printf("using %s, rotation %s", m, m.Rotation())
	return m, nil
}

// withMatrix calls fn with an initialized LED matrix and closes it afterwards.
func withMatrix(fn func(*sensehat.LEDMatrix) error) error {
	m, err := openMatrix()
	if err != nil {
		return err
	}
	if err = fn(m); err != nil {
		_ = m.Close()
		return err
	}
	return m.Close()
}
