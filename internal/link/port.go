// internal/link/port.go
package link

import (
	"io"
)

// Port is the minimal surface the link needs from a serial device.
// Real drivers and test fakes both satisfy it.
type Port interface {
	io.Writer
	io.Closer
}

// Opener opens a port at path with the given line options.
type Opener func(path string, opts Options) (Port, error)
