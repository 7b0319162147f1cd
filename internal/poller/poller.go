// internal/poller/poller.go
package poller

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// Client abstracts the bit reads the poller needs.
// The poller depends on geometry only.
type Client interface {
	ReadCoils(addr, qty uint16) ([]bool, error)          // FC 1
	ReadDiscreteInputs(addr, qty uint16) ([]bool, error) // FC 2
}

// Factory builds a fresh client. ONE attempt per call.
type Factory func() (Client, error)

// Config is the minimal runtime config the poller needs.
type Config struct {
	SourceID string
	Interval time.Duration
	Reads    []ReadBlock
}

// Poller is a dumb, clock-driven reader.
type Poller struct {
	cfg     Config
	client  Client
	factory Factory
	size    int
}

// New creates a poller with immutable config.
// factory may be nil; then a failed client is kept and retried as-is.
func New(cfg Config, client Client, factory Factory) (*Poller, error) {
	if cfg.SourceID == "" {
		return nil, errors.New("poller: source id required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if len(cfg.Reads) == 0 {
		return nil, errors.New("poller: at least one read block required")
	}
	if client == nil && factory == nil {
		return nil, errors.New("poller: client or factory required")
	}

	size := 0
	for _, rb := range cfg.Reads {
		size += int(rb.Quantity)
	}

	return &Poller{cfg: cfg, client: client, factory: factory, size: size}, nil
}

// Interval returns the configured tick interval.
func (p *Poller) Interval() time.Duration { return p.cfg.Interval }

// PollOnce performs exactly one poll cycle.
// All-or-nothing: any failure aborts the cycle.
// On failure the client is discarded when a factory is available;
// the factory is called on a later cycle, never within this one.
func (p *Poller) PollOnce() PollResult {
	res := PollResult{
		SourceID: p.cfg.SourceID,
		At:       time.Now(),
	}

	if p.client == nil {
		if p.factory == nil {
			res.Err = errors.New("poller: no client")
			return res
		}
		c, err := p.factory()
		if err != nil {
			res.Err = fmt.Errorf("poller: connect: %w", err)
			return res
		}
		p.client = c
	}

	bits := make([]bool, 0, p.size)

	for _, rb := range p.cfg.Reads {
		var (
			got []bool
			err error
		)

		switch rb.FC {
		case 1:
			got, err = p.client.ReadCoils(rb.Address, rb.Quantity)
		case 2:
			got, err = p.client.ReadDiscreteInputs(rb.Address, rb.Quantity)
		default:
			err = fmt.Errorf("poller: unsupported function code %d", rb.FC)
		}
		if err == nil && len(got) != int(rb.Quantity) {
			err = fmt.Errorf("poller: fc=%d addr=%d: got %d bits, want %d", rb.FC, rb.Address, len(got), rb.Quantity)
		}
		if err != nil {
			res.Err = err
			p.discard()
			return res
		}

		bits = append(bits, got...)
	}

	// Commit only if all reads succeeded
	res.Bits = bits
	return res
}

// Close releases the current client, if it holds a connection.
func (p *Poller) Close() error {
	if c, ok := p.client.(io.Closer); ok {
		p.client = nil
		return c.Close()
	}
	return nil
}

func (p *Poller) discard() {
	if p.factory == nil {
		return
	}
	_ = p.Close()
	p.client = nil
}
