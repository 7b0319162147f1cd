// internal/config/config.go
package config

import "github.com/tamzrod/glove-bridge/internal/frame"

type Config struct {
	Bridge BridgeConfig `yaml:"bridge" toml:"bridge"`
}

// ---- BRIDGE ----

type BridgeConfig struct {
	ID       string          `yaml:"id" toml:"id"`
	Poll     PollConfig      `yaml:"poll" toml:"poll"`
	Serial   SerialConfig    `yaml:"serial" toml:"serial"`
	Source   SourceConfig    `yaml:"source" toml:"source"`
	Bindings []BindingConfig `yaml:"bindings" toml:"bindings"` // empty => canonical 0..63
	Mirror   *MirrorConfig   `yaml:"mirror" toml:"mirror"`     // optional
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms" toml:"interval_ms"`
}

// ---- SERIAL LINK ----

type SerialConfig struct {
	Port      string `yaml:"port" toml:"port"`
	Driver    string `yaml:"driver" toml:"driver"` // goburrow | bugst
	BaudRate  int    `yaml:"baud_rate" toml:"baud_rate"`
	DataBits  int    `yaml:"data_bits" toml:"data_bits"`
	StopBits  int    `yaml:"stop_bits" toml:"stop_bits"`
	Parity    string `yaml:"parity" toml:"parity"`
	TimeoutMs int    `yaml:"timeout_ms" toml:"timeout_ms"`
}

// ---- CONTACT SOURCE ----

type SourceConfig struct {
	Kind   string       `yaml:"kind" toml:"kind"` // modbus | static
	Modbus ModbusSource `yaml:"modbus" toml:"modbus"`
	Static StaticSource `yaml:"static" toml:"static"`
	Reads  []ReadConfig `yaml:"reads" toml:"reads"`
}

type ModbusSource struct {
	Mode      string `yaml:"mode" toml:"mode"`         // tcp | rtu
	Endpoint  string `yaml:"endpoint" toml:"endpoint"` // host:port or serial device
	UnitID    uint8  `yaml:"unit_id" toml:"unit_id"`
	TimeoutMs int    `yaml:"timeout_ms" toml:"timeout_ms"`

	// RTU line settings; ignored for tcp.
	BaudRate int    `yaml:"baud_rate" toml:"baud_rate"`
	DataBits int    `yaml:"data_bits" toml:"data_bits"`
	StopBits int    `yaml:"stop_bits" toml:"stop_bits"`
	Parity   string `yaml:"parity" toml:"parity"`
}

// StaticSource holds a fixed set of bits high. Bench use only.
type StaticSource struct {
	Bits []int `yaml:"bits" toml:"bits"`
}

// ---- READ GEOMETRY ----

type ReadConfig struct {
	FC       uint8  `yaml:"fc" toml:"fc"` // 1 coils, 2 discrete inputs
	Address  uint16 `yaml:"address" toml:"address"`
	Quantity uint16 `yaml:"quantity" toml:"quantity"`
}

// ---- BINDINGS ----

type BindingConfig struct {
	Sensor string `yaml:"sensor" toml:"sensor"`
	Bit    int    `yaml:"bit" toml:"bit"`
}

// ---- MIRROR ----

type MirrorConfig struct {
	Protocol   string  `yaml:"protocol" toml:"protocol"` // modbus | ingest
	Endpoint   string  `yaml:"endpoint" toml:"endpoint"`
	UnitID     uint8   `yaml:"unit_id" toml:"unit_id"`
	Address    uint16  `yaml:"address" toml:"address"`         // first mask register
	StatusSlot *uint16 `yaml:"status_slot" toml:"status_slot"` // optional link status block
	DeviceName string  `yaml:"device_name" toml:"device_name"`
	TimeoutMs  int     `yaml:"timeout_ms" toml:"timeout_ms"`
}

// BankSize returns the number of bits the source delivers per poll.
// A static source always delivers one bit per sensor.
func (s SourceConfig) BankSize() int {
	if s.Kind == SourceStatic {
		return frame.SensorCount
	}
	n := 0
	for _, r := range s.Reads {
		n += int(r.Quantity)
	}
	return n
}
