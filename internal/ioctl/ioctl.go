//go:build linux

// Package ioctl wraps the ioctl system call for device drivers.
package ioctl

import (
	"fmt"
	"reflect"
	"syscall"
)

// Command to be sent over ioctl.
type Command uintptr

func (c Command) String() string {
	return fmt.Sprintf("ioctl 0x%04x", uintptr(c))
}

// Do executes the ioctl call, ptr must be a pointer to the argument or nil.
func Do(fd uintptr, command Command, ptr any) error {
	var p uintptr

	if ptr != nil {
		v := reflect.ValueOf(ptr)
		if v.Kind() != reflect.Pointer {
			return fmt.Errorf("%s: argument must be a pointer, got %T", command, ptr)
		}
		p = v.Pointer()
	}

	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, uintptr(command), p)
	if errno != 0 {
		return &CommandError{Command: command, Err: errno}
	}
	return nil
}

// CommandError is a failed ioctl call.
type CommandError struct {
	Command Command
	Err     syscall.Errno
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
