// internal/config/normalize_test.go
package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize_Defaults(t *testing.T) {
	cfg := bridge("left")
	cfg.Bridge.Mirror = &MirrorConfig{
		Endpoint:   "127.0.0.1:1502",
		DeviceName: "LEFT-HAND-GLOVE-PROTOTYPE",
	}

	if err := Validate(cfg); err != nil {
		t.Fatalf("validate: %v", err)
	}
	Normalize(cfg)

	b := cfg.Bridge

	wantSerial := SerialConfig{
		Port:      "/dev/ttyACM0",
		Driver:    DriverGoburrow,
		BaudRate:  115200,
		DataBits:  8,
		StopBits:  1,
		Parity:    "N",
		TimeoutMs: DefaultSerialTimeoutMs,
	}
	if diff := cmp.Diff(wantSerial, b.Serial); diff != "" {
		t.Fatalf("serial defaults mismatch (-want +got):\n%s", diff)
	}

	if b.Poll.IntervalMs != DefaultIntervalMs {
		t.Fatalf("interval: got=%d want=%d", b.Poll.IntervalMs, DefaultIntervalMs)
	}
	if b.Source.Kind != SourceModbus || b.Source.Modbus.Mode != ModeTCP {
		t.Fatalf("source defaults: kind=%q mode=%q", b.Source.Kind, b.Source.Modbus.Mode)
	}
	if b.Mirror.Protocol != MirrorModbus {
		t.Fatalf("mirror protocol: got=%q", b.Mirror.Protocol)
	}
	if b.Mirror.DeviceName != "LEFT-HAND-GLOVE-" {
		t.Fatalf("device name not truncated: %q", b.Mirror.DeviceName)
	}
}

func TestNormalize_CanonicalBindings(t *testing.T) {
	cfg := bridge("left")
	Normalize(cfg)

	got := cfg.Bridge.Bindings
	if len(got) != 64 {
		t.Fatalf("expected 64 bindings, got %d", len(got))
	}

	want := map[int]BindingConfig{
		0:  {Sensor: "TCell1_1", Bit: 0},
		7:  {Sensor: "TCell1_8", Bit: 7},
		8:  {Sensor: "TCell2_1", Bit: 8},
		16: {Sensor: "ICell1_1", Bit: 16},
		63: {Sensor: "RCell2_8", Bit: 63},
	}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("binding %d: got=%+v want=%+v", i, got[i], w)
		}
	}
}

func TestNormalize_ExplicitBindingsKept(t *testing.T) {
	cfg := bridge("left")
	cfg.Bridge.Bindings = []BindingConfig{{Sensor: "MCell2_4", Bit: 3}}
	Normalize(cfg)

	if len(cfg.Bridge.Bindings) != 1 {
		t.Fatalf("explicit bindings replaced: %+v", cfg.Bridge.Bindings)
	}
}

func TestNormalize_RTULineDefaults(t *testing.T) {
	cfg := bridge("left")
	cfg.Bridge.Source.Modbus.Mode = ModeRTU
	cfg.Bridge.Source.Modbus.Parity = "even"
	Normalize(cfg)

	m := cfg.Bridge.Source.Modbus
	if m.BaudRate != DefaultRTUBaudRate || m.DataBits != 8 || m.StopBits != 1 || m.Parity != "E" {
		t.Fatalf("rtu defaults: %+v", m)
	}
}

func TestNormalize_CanonicalBindingsStopAtBankEnd(t *testing.T) {
	cfg := bridge("left")
	cfg.Bridge.Source.Reads = []ReadConfig{{FC: 2, Address: 0, Quantity: 16}}

	if err := Validate(cfg); err != nil {
		t.Fatalf("validate: %v", err)
	}
	Normalize(cfg)

	got := cfg.Bridge.Bindings
	if len(got) != 16 {
		t.Fatalf("expected 16 bindings for a 16-bit bank, got %d", len(got))
	}
	for _, bc := range got {
		if bc.Bit >= cfg.Bridge.Source.BankSize() {
			t.Fatalf("binding %+v outside bank", bc)
		}
	}
	if last := got[len(got)-1]; last.Sensor != "TCell2_8" {
		t.Fatalf("last binding: got=%+v", last)
	}
}

func TestNormalize_StaticSourceBindsEverySensor(t *testing.T) {
	cfg := bridge("bench")
	cfg.Bridge.Source = SourceConfig{Kind: SourceStatic}
	Normalize(cfg)

	if n := len(cfg.Bridge.Bindings); n != 64 {
		t.Fatalf("expected 64 bindings, got %d", n)
	}
}
