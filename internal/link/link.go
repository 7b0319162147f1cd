// internal/link/link.go
package link

import (
	"fmt"
	"io"

	"github.com/tamzrod/glove-bridge/internal/frame"
)

// Link is the outbound contract the bridge writes frames to.
type Link interface {
	WriteFrame(f string) error
	Close() error
}

// Serial writes delimited frames to one serial port.
// It is owned by the single orchestrator goroutine; no locking.
type Serial struct {
	path    string
	port    Port
	openErr error
	closed  bool
}

// Open opens the port once. No retries.
// The returned *Serial is never nil: when the open fails the link is
// down, every WriteFrame returns ErrLinkDown, and err reports why so the
// caller can log it once.
func Open(path string, opts Options, open Opener) (*Serial, error) {
	s := &Serial{path: path}

	port, err := open(path, opts)
	if err != nil {
		s.openErr = fmt.Errorf("open %s: %w", path, err)
		return s, s.openErr
	}

	s.port = port
	return s, nil
}

// NewSerial wraps an already-open port.
func NewSerial(path string, port Port) *Serial {
	return &Serial{path: path, port: port}
}

// Path returns the device path.
func (s *Serial) Path() string { return s.path }

// Up reports whether frames can be written.
func (s *Serial) Up() bool {
	return s.port != nil && !s.closed
}

// WriteFrame writes "<" + f + ">" with no line ending.
func (s *Serial) WriteFrame(f string) error {
	if s.closed {
		return &Error{code: CodeClosed, op: "write", err: ErrClosed}
	}
	if s.port == nil {
		return &Error{code: CodeLinkDown, op: "write", err: ErrLinkDown}
	}

	if err := writeAll(s.port, frame.Wrap(f)); err != nil {
		code := CodeWrite
		if err == io.ErrShortWrite {
			code = CodeShortWrite
		}
		return &Error{code: code, op: "write " + s.path, err: err}
	}
	return nil
}

// Close closes the port. Safe to call more than once.
func (s *Serial) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.port == nil {
		return nil
	}
	return s.port.Close()
}

func writeAll(w io.Writer, b []byte) error {
	for len(b) > 0 {
		n, err := w.Write(b)
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}
		b = b[n:]
	}
	return nil
}
