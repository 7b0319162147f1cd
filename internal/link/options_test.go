// internal/link/options_test.go
package link

import (
	"testing"

	bugserial "go.bug.st/serial"
)

func TestOptions_Normalize_Defaults(t *testing.T) {
	got, err := Options{}.Normalize()
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if got.BaudRate != 115200 {
		t.Errorf("BaudRate = %d, want 115200", got.BaudRate)
	}
	if got.DataBits != 8 {
		t.Errorf("DataBits = %d, want 8", got.DataBits)
	}
	if got.StopBits != 1 {
		t.Errorf("StopBits = %d, want 1", got.StopBits)
	}
	if got.Parity != "N" {
		t.Errorf("Parity = %q, want %q", got.Parity, "N")
	}
}

func TestOptions_Normalize_Invalid(t *testing.T) {
	for _, o := range []Options{
		{DataBits: 4},
		{DataBits: 9},
		{StopBits: 3},
		{Parity: "M"},
	} {
		if _, err := o.Normalize(); err == nil {
			t.Errorf("Normalize(%+v): expected error", o)
		}
	}
}

func TestOptions_BugstMode(t *testing.T) {
	mode, err := Options{BaudRate: 9600, DataBits: 7, StopBits: 2, Parity: "even"}.BugstMode()
	if err != nil {
		t.Fatalf("BugstMode() error = %v", err)
	}
	if mode.BaudRate != 9600 || mode.DataBits != 7 {
		t.Errorf("mode = %+v", mode)
	}
	if mode.StopBits != bugserial.TwoStopBits {
		t.Errorf("StopBits = %v, want TwoStopBits", mode.StopBits)
	}
	if mode.Parity != bugserial.EvenParity {
		t.Errorf("Parity = %v, want EvenParity", mode.Parity)
	}
}

func TestOptions_GoburrowConfig(t *testing.T) {
	c, err := Options{Parity: "odd"}.GoburrowConfig("/dev/ttyUSB0")
	if err != nil {
		t.Fatalf("GoburrowConfig() error = %v", err)
	}
	if c.Address != "/dev/ttyUSB0" || c.BaudRate != 115200 || c.DataBits != 8 || c.StopBits != 1 || c.Parity != "O" {
		t.Errorf("config = %+v", c)
	}
}
