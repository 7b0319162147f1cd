// internal/link/errors.go
package link

import (
	"errors"
	"fmt"
)

// ErrLinkDown is returned for writes on a link that never opened.
var ErrLinkDown = errors.New("link: serial port not open")

// ErrUnknownDriver is returned by DriverFor and Build for unregistered driver names.
var ErrUnknownDriver = errors.New("link: unknown serial driver")

// ErrClosed is returned for writes after Close.
var ErrClosed = errors.New("link: closed")

// Error codes reported through the status block.
const (
	CodeLinkDown   uint16 = 1
	CodeWrite      uint16 = 2
	CodeShortWrite uint16 = 3
	CodeClosed     uint16 = 4
)

// Error is a link failure carrying a status code.
type Error struct {
	code uint16
	op   string
	err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("link: %s: %v", e.op, e.err)
}

func (e *Error) Unwrap() error { return e.err }

// Code returns the status-block error code.
func (e *Error) Code() uint16 { return e.code }
