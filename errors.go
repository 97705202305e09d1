package sensehat

import (
	"errors"
	"fmt"
)

// Errors
var (
	// ErrValidation is returned for malformed input, before any state is changed.
	ErrValidation = errors.New("sensehat: invalid argument")

	// ErrState is returned when an operation is invoked in the wrong lifecycle state.
	ErrState = errors.New("sensehat: invalid state")

	ErrNotInitialized     = fmt.Errorf("%w: not initialized", ErrState)
	ErrAlreadyInitialized = fmt.Errorf("%w: already initialized", ErrState)
	ErrClosed             = fmt.Errorf("%w: closed", ErrState)
)

// DeviceError records a failed operation on the device boundary.
type DeviceError struct {
	Op     string // "open", "read", "write" or "close"
	Device string
	Err    error
}

func (e *DeviceError) Error() string {
	if e.Device == "" {
		return "sensehat: device " + e.Op + ": " + e.Err.Error()
	}
	return "sensehat: device " + e.Op + " " + e.Device + ": " + e.Err.Error()
}

func (e *DeviceError) Unwrap() error {
	return e.Err
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}
