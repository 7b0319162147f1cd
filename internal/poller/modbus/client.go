// internal/poller/modbus/client.go
package modbus

import (
	"errors"
	"fmt"
	"time"

	"github.com/goburrow/modbus"
)

// Mode selects the Modbus framing.
const (
	ModeTCP = "tcp"
	ModeRTU = "rtu"
)

// handler is what both goburrow client handlers provide.
type handler interface {
	modbus.ClientHandler
	Connect() error
	Close() error
}

// Client implements poller.Client over github.com/goburrow/modbus.
// This adapter is geometry-only: it issues bit reads and unpacks responses.
type Client struct {
	h      handler
	client modbus.Client
}

// Config is minimal transport config.
type Config struct {
	Mode     string // tcp | rtu
	Endpoint string // host:port for tcp, device path for rtu
	UnitID   uint8
	Timeout  time.Duration

	// RTU line settings.
	BaudRate int
	DataBits int
	StopBits int
	Parity   string
}

// New creates a connected Modbus client.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("modbus client: endpoint required")
	}

	var h handler
	switch cfg.Mode {
	case "", ModeTCP:
		th := modbus.NewTCPClientHandler(cfg.Endpoint)
		th.Timeout = cfg.Timeout
		th.SlaveId = cfg.UnitID
		h = th
	case ModeRTU:
		rh := modbus.NewRTUClientHandler(cfg.Endpoint)
		rh.BaudRate = cfg.BaudRate
		rh.DataBits = cfg.DataBits
		rh.StopBits = cfg.StopBits
		rh.Parity = cfg.Parity
		rh.Timeout = cfg.Timeout
		rh.SlaveId = cfg.UnitID
		h = rh
	default:
		return nil, fmt.Errorf("modbus client: unknown mode %q", cfg.Mode)
	}

	if err := h.Connect(); err != nil {
		return nil, fmt.Errorf("modbus client: connect %s: %w", cfg.Endpoint, err)
	}

	return &Client{h: h, client: modbus.NewClient(h)}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c == nil || c.h == nil {
		return nil
	}
	return c.h.Close()
}

// ---- poller.Client interface ----

func (c *Client) ReadCoils(addr, qty uint16) ([]bool, error) {
	if qty == 0 {
		return nil, nil
	}
	raw, err := c.client.ReadCoils(addr, qty)
	if err != nil {
		return nil, err
	}
	return unpackBits(raw, int(qty))
}

func (c *Client) ReadDiscreteInputs(addr, qty uint16) ([]bool, error) {
	if qty == 0 {
		return nil, nil
	}
	raw, err := c.client.ReadDiscreteInputs(addr, qty)
	if err != nil {
		return nil, err
	}
	return unpackBits(raw, int(qty))
}

// ---- helpers (pure geometry) ----

// unpackBits expands packed Modbus bits, LSB of byte 0 first.
func unpackBits(data []byte, count int) ([]bool, error) {
	if len(data)*8 < count {
		return nil, fmt.Errorf("modbus: short read-bits payload: %d bytes for %d bits", len(data), count)
	}
	out := make([]bool, count)
	for i := 0; i < count; i++ {
		out[i] = data[i/8]&(1<<uint(i%8)) != 0
	}
	return out, nil
}
