// internal/config/normalize.go
package config

import (
	"github.com/tamzrod/glove-bridge/internal/link"
	"github.com/tamzrod/glove-bridge/internal/sensor"
	"github.com/tamzrod/glove-bridge/internal/status"
)

// Accepted enum values.
const (
	DriverGoburrow = link.DriverGoburrow
	DriverBugst    = link.DriverBugst

	SourceModbus = "modbus"
	SourceStatic = "static"

	ModeTCP = "tcp"
	ModeRTU = "rtu"

	MirrorModbus = "modbus"
	MirrorIngest = "ingest"
)

// Defaults applied by Normalize.
const (
	DefaultIntervalMs      = 16 // one host frame at ~60 Hz
	DefaultBaudRate        = 115200
	DefaultRTUBaudRate     = 19200
	DefaultDataBits        = 8
	DefaultStopBits        = 1
	DefaultSerialTimeoutMs = 100
	DefaultModbusTimeoutMs = 1000
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}
	b := &cfg.Bridge

	if b.Poll.IntervalMs == 0 {
		b.Poll.IntervalMs = DefaultIntervalMs
	}

	// ---- serial link ----

	if b.Serial.Driver == "" {
		b.Serial.Driver = DriverGoburrow
	}
	normalizeLine(&b.Serial.BaudRate, &b.Serial.DataBits, &b.Serial.StopBits, &b.Serial.Parity, DefaultBaudRate)
	if b.Serial.TimeoutMs <= 0 {
		b.Serial.TimeoutMs = DefaultSerialTimeoutMs
	}

	// ---- source ----

	if b.Source.Kind == "" {
		b.Source.Kind = SourceModbus
	}
	if b.Source.Kind == SourceModbus {
		m := &b.Source.Modbus
		if m.Mode == "" {
			m.Mode = ModeTCP
		}
		if m.TimeoutMs <= 0 {
			m.TimeoutMs = DefaultModbusTimeoutMs
		}
		if m.Mode == ModeRTU {
			normalizeLine(&m.BaudRate, &m.DataBits, &m.StopBits, &m.Parity, DefaultRTUBaudRate)
		}
	}

	// ---- bindings ----

	// No explicit bindings: sensor i in wire order reads bank bit i.
	// Sensors past the end of the bank stay unbound and are reported at startup.
	if len(b.Bindings) == 0 {
		n := b.Source.BankSize()
		for _, id := range sensor.All() {
			if id.Index() >= n {
				break
			}
			b.Bindings = append(b.Bindings, BindingConfig{Sensor: id.Name(), Bit: id.Index()})
		}
	}

	// ---- mirror ----

	if m := b.Mirror; m != nil {
		if m.Protocol == "" {
			m.Protocol = MirrorModbus
		}
		if m.TimeoutMs <= 0 {
			m.TimeoutMs = DefaultModbusTimeoutMs
		}
		// ASCII already validated; truncate to what the status block can hold.
		if len(m.DeviceName) > status.DeviceNameMaxChars {
			m.DeviceName = m.DeviceName[:status.DeviceNameMaxChars]
		}
	}
}

func normalizeLine(baud, dataBits, stopBits *int, parity *string, defaultBaud int) {
	if *baud <= 0 {
		*baud = defaultBaud
	}
	if *dataBits == 0 {
		*dataBits = DefaultDataBits
	}
	if *stopBits == 0 {
		*stopBits = DefaultStopBits
	}
	if p, ok := parityCode(*parity); ok {
		*parity = p
	}
}
