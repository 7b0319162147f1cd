// internal/link/options.go
package link

import (
	"fmt"
	"strings"
	"time"

	goserial "github.com/goburrow/serial"
	bugserial "go.bug.st/serial"
)

// DefaultBaudRate matches the receiving microcontroller firmware.
const DefaultBaudRate = 115200

// Options describes the serial line. Zero values take defaults in Normalize.
type Options struct {
	BaudRate int
	DataBits int
	StopBits int
	Parity   string
	Timeout  time.Duration
}

// Normalize validates the options and applies defaults for any unset values.
func (o Options) Normalize() (Options, error) {
	opts := o

	if opts.BaudRate <= 0 {
		opts.BaudRate = DefaultBaudRate
	}

	if opts.DataBits == 0 {
		opts.DataBits = 8
	}
	if opts.DataBits < 5 || opts.DataBits > 8 {
		return opts, fmt.Errorf("invalid data bits %d: must be between 5 and 8", opts.DataBits)
	}

	if opts.StopBits == 0 {
		opts.StopBits = 1
	}
	if opts.StopBits != 1 && opts.StopBits != 2 {
		return opts, fmt.Errorf("invalid stop bits %d: supported values are 1 or 2", opts.StopBits)
	}

	switch strings.TrimSpace(strings.ToUpper(opts.Parity)) {
	case "", "N", "NONE":
		opts.Parity = "N"
	case "E", "EVEN":
		opts.Parity = "E"
	case "O", "ODD":
		opts.Parity = "O"
	default:
		return opts, fmt.Errorf("unsupported parity %q: expected N, E, or O", opts.Parity)
	}

	return opts, nil
}

// GoburrowConfig converts the options into a github.com/goburrow/serial config.
func (o Options) GoburrowConfig(path string) (*goserial.Config, error) {
	opts, err := o.Normalize()
	if err != nil {
		return nil, err
	}

	return &goserial.Config{
		Address:  path,
		BaudRate: opts.BaudRate,
		DataBits: opts.DataBits,
		StopBits: opts.StopBits,
		Parity:   opts.Parity,
		Timeout:  opts.Timeout,
	}, nil
}

// BugstMode converts the options into the go.bug.st/serial mode structure.
func (o Options) BugstMode() (*bugserial.Mode, error) {
	opts, err := o.Normalize()
	if err != nil {
		return nil, err
	}

	mode := &bugserial.Mode{
		BaudRate: opts.BaudRate,
		DataBits: opts.DataBits,
		StopBits: bugserial.OneStopBit,
	}
	if opts.StopBits == 2 {
		mode.StopBits = bugserial.TwoStopBits
	}

	switch opts.Parity {
	case "N":
		mode.Parity = bugserial.NoParity
	case "E":
		mode.Parity = bugserial.EvenParity
	case "O":
		mode.Parity = bugserial.OddParity
	}

	return mode, nil
}
