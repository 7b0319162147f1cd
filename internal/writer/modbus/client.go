// internal/writer/modbus/client.go
package modbus

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goburrow/modbus"
)

// areaHolding is the only mirror target: holding registers (FC16).
const areaHolding byte = 3

// maxRegisters is the FC16 per-request limit.
const maxRegisters = 123

// holdingWriter is the part of modbus.Client the mirror uses.
type holdingWriter interface {
	WriteMultipleRegisters(address, quantity uint16, value []byte) ([]byte, error)
}

// EndpointClient mirrors masks and status into one Modbus TCP server.
// Writes are serialized because the unit id lives on the shared handler.
type EndpointClient struct {
	mu       sync.Mutex
	endpoint string
	handler  *modbus.TCPClientHandler
	regs     holdingWriter
}

type Config struct {
	Endpoint string
	Timeout  time.Duration
}

func NewEndpointClient(cfg Config) (*EndpointClient, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("writer modbus: endpoint required")
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout

	if err := h.Connect(); err != nil {
		return nil, fmt.Errorf("writer modbus: connect %s: %w", cfg.Endpoint, err)
	}

	return &EndpointClient{
		endpoint: cfg.Endpoint,
		handler:  h,
		regs:     modbus.NewClient(h),
	}, nil
}

func (c *EndpointClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handler.Close()
}

// WriteRegisters writes regs starting at addr on unitID. area must be 3.
func (c *EndpointClient) WriteRegisters(area byte, unitID uint8, addr uint16, regs []uint16) error {
	if area != areaHolding {
		return fmt.Errorf("writer modbus: unsupported area %d", area)
	}
	if len(regs) == 0 || len(regs) > maxRegisters {
		return fmt.Errorf("writer modbus: %d registers, want 1..%d", len(regs), maxRegisters)
	}
	if int(addr)+len(regs) > 0x10000 {
		return fmt.Errorf("writer modbus: addr=%d count=%d exceeds address space", addr, len(regs))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.handler.SlaveId = unitID

	if _, err := c.regs.WriteMultipleRegisters(addr, uint16(len(regs)), packRegisters(regs)); err != nil {
		return fmt.Errorf("writer modbus: %s unit=%d addr=%d: %w", c.endpoint, unitID, addr, err)
	}
	return nil
}

// packRegisters lays registers out big-endian, as they travel on the wire.
func packRegisters(regs []uint16) []byte {
	out := make([]byte, 2*len(regs))
	for i, r := range regs {
		binary.BigEndian.PutUint16(out[2*i:], r)
	}
	return out
}
