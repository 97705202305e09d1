//go:build linux

package ioctl

import (
	"errors"
	"syscall"
	"testing"
)

func TestCommandString(t *testing.T) {
	if v := Command(0x4602).String(); v != "ioctl 0x4602" {
		t.Errorf("expected \"ioctl 0x4602\", got %q", v)
	}
}

func TestDoRejectsNonPointer(t *testing.T) {
	if err := Do(0, 0x4602, 42); err == nil {
		t.Error("expected error for non-pointer argument")
	}
}

func TestCommandErrorUnwrap(t *testing.T) {
	err := error(&CommandError{Command: 0x4600, Err: syscall.ENOTTY})
	if !errors.Is(err, syscall.ENOTTY) {
		t.Errorf("expected error to wrap ENOTTY, got %v", err)
	}
}
