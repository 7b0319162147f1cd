// internal/link/drivers.go
package link

import (
	"fmt"
	"sort"

	goserial "github.com/goburrow/serial"
	bugserial "go.bug.st/serial"
)

// Serial driver names.
const (
	DriverGoburrow = "goburrow" // github.com/goburrow/serial
	DriverBugst    = "bugst"    // go.bug.st/serial
)

var drivers = map[string]Opener{
	DriverGoburrow: openGoburrow,
	DriverBugst:    openBugst,
}

// DriverFor returns the opener registered under name.
// An empty name selects DriverGoburrow.
func DriverFor(name string) (Opener, error) {
	if name == "" {
		name = DriverGoburrow
	}
	op, ok := drivers[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownDriver, name)
	}
	return op, nil
}

func openGoburrow(path string, opts Options) (Port, error) {
	c, err := opts.GoburrowConfig(path)
	if err != nil {
		return nil, err
	}
	return goserial.Open(c)
}

func openBugst(path string, opts Options) (Port, error) {
	mode, err := opts.BugstMode()
	if err != nil {
		return nil, err
	}
	p, err := bugserial.Open(path, mode)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListPorts returns the serial devices visible to the host, sorted.
func ListPorts() ([]string, error) {
	ports, err := bugserial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("link: list ports: %w", err)
	}
	sort.Strings(ports)
	return ports, nil
}
