//go:build !linux

package framebuffer

// Device is a framebuffer device.
type Device struct{}

func Open(_ string) (*Device, error) {
	return nil, ErrNotSupported
}

func Find() (*Device, error) {
	return nil, ErrNotSupported
}

func (d *Device) String() string {
	return "framebuffer"
}

func (d *Device) ReadAt(_ []byte, _ int64) (int, error) {
	return 0, ErrNotSupported
}

func (d *Device) WriteAt(_ []byte, _ int64) (int, error) {
	return 0, ErrNotSupported
}

func (d *Device) Close() error {
	return nil
}
