// internal/config/validate.go
package config

import (
	"fmt"
	"strings"

	"github.com/tamzrod/glove-bridge/internal/frame"
	"github.com/tamzrod/glove-bridge/internal/sensor"
	"github.com/tamzrod/glove-bridge/internal/status"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// Zero values are accepted wherever Normalize supplies a default.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: empty")
	}
	b := cfg.Bridge

	if b.ID == "" {
		return fmt.Errorf("bridge: id required")
	}
	if b.Poll.IntervalMs < 0 {
		return fmt.Errorf("bridge %q: poll.interval_ms must be >= 0", b.ID)
	}

	// ------------------------------------------------------------
	// SERIAL LINK
	// ------------------------------------------------------------

	if b.Serial.Port == "" {
		return fmt.Errorf("bridge %q: serial.port required", b.ID)
	}
	switch b.Serial.Driver {
	case "", DriverGoburrow, DriverBugst:
	default:
		return fmt.Errorf("bridge %q: unknown serial.driver %q", b.ID, b.Serial.Driver)
	}
	if err := validateLine(b.Serial.BaudRate, b.Serial.DataBits, b.Serial.StopBits, b.Serial.Parity); err != nil {
		return fmt.Errorf("bridge %q: serial: %w", b.ID, err)
	}

	// ------------------------------------------------------------
	// CONTACT SOURCE
	// ------------------------------------------------------------

	bankSize := frame.SensorCount

	switch b.Source.Kind {
	case "", SourceModbus:
		m := b.Source.Modbus
		if m.Endpoint == "" {
			return fmt.Errorf("bridge %q: source.modbus.endpoint required", b.ID)
		}
		switch m.Mode {
		case "", ModeTCP:
		case ModeRTU:
			if err := validateLine(m.BaudRate, m.DataBits, m.StopBits, m.Parity); err != nil {
				return fmt.Errorf("bridge %q: source.modbus: %w", b.ID, err)
			}
		default:
			return fmt.Errorf("bridge %q: unknown source.modbus.mode %q", b.ID, m.Mode)
		}

		if len(b.Source.Reads) == 0 {
			return fmt.Errorf("bridge %q: source.reads required for modbus source", b.ID)
		}
		for i, r := range b.Source.Reads {
			if r.FC != 1 && r.FC != 2 {
				return fmt.Errorf("bridge %q: source.reads[%d]: fc must be 1 or 2, got %d", b.ID, i, r.FC)
			}
			if r.Quantity == 0 {
				return fmt.Errorf("bridge %q: source.reads[%d]: quantity must be > 0", b.ID, i)
			}
			if int(r.Address)+int(r.Quantity) > 0x10000 {
				return fmt.Errorf("bridge %q: source.reads[%d]: range exceeds address space", b.ID, i)
			}
		}
		bankSize = b.Source.BankSize()

	case SourceStatic:
		for _, bit := range b.Source.Static.Bits {
			if bit < 0 || bit >= frame.SensorCount {
				return fmt.Errorf("bridge %q: source.static bit %d out of range 0..%d", b.ID, bit, frame.SensorCount-1)
			}
		}

	default:
		return fmt.Errorf("bridge %q: unknown source.kind %q", b.ID, b.Source.Kind)
	}

	// ------------------------------------------------------------
	// BINDINGS
	// ------------------------------------------------------------

	seen := make(map[sensor.ID]struct{}, len(b.Bindings))
	for _, bc := range b.Bindings {
		id, err := sensor.ParseName(bc.Sensor)
		if err != nil {
			return fmt.Errorf("bridge %q: binding: %w", b.ID, err)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("bridge %q: sensor %s bound more than once", b.ID, id)
		}
		seen[id] = struct{}{}

		if bc.Bit < 0 || bc.Bit >= bankSize {
			return fmt.Errorf(
				"bridge %q: sensor %s bit %d outside source bank (0..%d)",
				b.ID, id, bc.Bit, bankSize-1,
			)
		}
	}

	// ------------------------------------------------------------
	// MIRROR (OPT-IN)
	// ------------------------------------------------------------

	if b.Mirror != nil {
		if err := validateMirror(b.Mirror); err != nil {
			return fmt.Errorf("bridge %q: mirror: %w", b.ID, err)
		}
	}

	return nil
}

func validateMirror(m *MirrorConfig) error {
	switch m.Protocol {
	case "", MirrorModbus, MirrorIngest:
	default:
		return fmt.Errorf("unknown protocol %q", m.Protocol)
	}
	if m.Endpoint == "" {
		return fmt.Errorf("endpoint required")
	}

	// device_name sanity (ASCII only)
	for i := 0; i < len(m.DeviceName); i++ {
		if m.DeviceName[i] > 0x7F {
			return fmt.Errorf("device_name must contain ASCII characters only")
		}
	}

	// mask registers: address .. address+7 (inclusive)
	maskStart := int(m.Address)
	maskEnd := maskStart + frame.ChannelCount*frame.SegmentsPerChannel - 1
	if maskEnd > 0xFFFF {
		return fmt.Errorf("mask registers exceed address space")
	}

	if m.StatusSlot == nil {
		return nil
	}

	statusStart := int(*m.StatusSlot) * status.SlotsPerDevice
	statusEnd := statusStart + status.SlotsPerDevice - 1
	if statusEnd > 0xFFFF {
		return fmt.Errorf("status_slot %d exceeds address space", *m.StatusSlot)
	}

	// overlap check (inclusive)
	if !(maskEnd < statusStart || maskStart > statusEnd) {
		return fmt.Errorf(
			"mask registers %d-%d overlap status block %d-%d",
			maskStart, maskEnd, statusStart, statusEnd,
		)
	}

	return nil
}

// validateLine checks serial line settings. Zero values mean "default".
func validateLine(baud, dataBits, stopBits int, parity string) error {
	if baud < 0 {
		return fmt.Errorf("baud_rate must be >= 0")
	}
	if dataBits != 0 && (dataBits < 5 || dataBits > 8) {
		return fmt.Errorf("invalid data bits %d: must be between 5 and 8", dataBits)
	}
	if stopBits != 0 && stopBits != 1 && stopBits != 2 {
		return fmt.Errorf("invalid stop bits %d: supported values are 1 or 2", stopBits)
	}
	if _, ok := parityCode(parity); !ok {
		return fmt.Errorf("unsupported parity %q: expected N, E, or O", parity)
	}
	return nil
}

// parityCode maps accepted spellings onto N, E or O. Empty means N.
func parityCode(p string) (string, bool) {
	switch strings.ToUpper(strings.TrimSpace(p)) {
	case "", "N", "NONE":
		return "N", true
	case "E", "EVEN":
		return "E", true
	case "O", "ODD":
		return "O", true
	default:
		return "", false
	}
}
