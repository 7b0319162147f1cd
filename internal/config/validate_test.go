// internal/config/validate_test.go
package config

import (
	"testing"
)

// helper to build a valid modbus-sourced bridge quickly
func bridge(id string) *Config {
	return &Config{
		Bridge: BridgeConfig{
			ID:     id,
			Serial: SerialConfig{Port: "/dev/ttyACM0"},
			Source: SourceConfig{
				Modbus: ModbusSource{Endpoint: "127.0.0.1:502"},
				Reads: []ReadConfig{
					{FC: 2, Address: 0, Quantity: 64},
				},
			},
		},
	}
}

func u16(v uint16) *uint16 { return &v }

// ---- tests ----

func TestValidate_MinimalOK(t *testing.T) {
	if err := Validate(bridge("left")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_StaticSourceNeedsNoReads(t *testing.T) {
	cfg := bridge("bench")
	cfg.Bridge.Source = SourceConfig{
		Kind:   SourceStatic,
		Static: StaticSource{Bits: []int{0, 63}},
	}

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"missing id", func(c *Config) { c.Bridge.ID = "" }},
		{"negative interval", func(c *Config) { c.Bridge.Poll.IntervalMs = -1 }},
		{"missing port", func(c *Config) { c.Bridge.Serial.Port = "" }},
		{"unknown driver", func(c *Config) { c.Bridge.Serial.Driver = "usb" }},
		{"bad parity", func(c *Config) { c.Bridge.Serial.Parity = "X" }},
		{"bad data bits", func(c *Config) { c.Bridge.Serial.DataBits = 9 }},
		{"bad stop bits", func(c *Config) { c.Bridge.Serial.StopBits = 3 }},
		{"unknown source", func(c *Config) { c.Bridge.Source.Kind = "udp" }},
		{"missing modbus endpoint", func(c *Config) { c.Bridge.Source.Modbus.Endpoint = "" }},
		{"unknown modbus mode", func(c *Config) { c.Bridge.Source.Modbus.Mode = "ascii" }},
		{"rtu bad parity", func(c *Config) {
			c.Bridge.Source.Modbus.Mode = ModeRTU
			c.Bridge.Source.Modbus.Parity = "Q"
		}},
		{"no reads", func(c *Config) { c.Bridge.Source.Reads = nil }},
		{"register fc", func(c *Config) { c.Bridge.Source.Reads[0].FC = 3 }},
		{"zero quantity", func(c *Config) { c.Bridge.Source.Reads[0].Quantity = 0 }},
		{"read past address space", func(c *Config) { c.Bridge.Source.Reads[0].Address = 0xFFF0 }},
		{"static bit out of range", func(c *Config) {
			c.Bridge.Source = SourceConfig{Kind: SourceStatic, Static: StaticSource{Bits: []int{64}}}
		}},
		{"unknown sensor", func(c *Config) {
			c.Bridge.Bindings = []BindingConfig{{Sensor: "PCell1_1", Bit: 0}}
		}},
		{"duplicate sensor", func(c *Config) {
			c.Bridge.Bindings = []BindingConfig{{Sensor: "TCell1_1", Bit: 0}, {Sensor: "TCell1_1", Bit: 1}}
		}},
		{"bit outside bank", func(c *Config) {
			c.Bridge.Source.Reads[0].Quantity = 8
			c.Bridge.Bindings = []BindingConfig{{Sensor: "TCell1_1", Bit: 8}}
		}},
		{"mirror unknown protocol", func(c *Config) {
			c.Bridge.Mirror = &MirrorConfig{Protocol: "mqtt", Endpoint: "x:1"}
		}},
		{"mirror missing endpoint", func(c *Config) {
			c.Bridge.Mirror = &MirrorConfig{}
		}},
		{"mirror non-ascii name", func(c *Config) {
			c.Bridge.Mirror = &MirrorConfig{Endpoint: "x:1", DeviceName: "ganté"}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := bridge("left")
			tc.mutate(cfg)
			if err := Validate(cfg); err == nil {
				t.Fatalf("expected error, got nil")
			}
		})
	}
}

func TestValidate_MirrorStatusTouchingAllowed(t *testing.T) {
	cfg := bridge("left")
	cfg.Bridge.Mirror = &MirrorConfig{
		Endpoint:   "127.0.0.1:1502",
		Address:    12,     // 12-19
		StatusSlot: u16(1), // 20-39
	}

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MirrorStatusOverlapDetected(t *testing.T) {
	cfg := bridge("left")
	cfg.Bridge.Mirror = &MirrorConfig{
		Endpoint:   "127.0.0.1:1502",
		Address:    15,     // 15-22
		StatusSlot: u16(1), // 20-39, overlaps
	}

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected overlap error, got nil")
	}
}
