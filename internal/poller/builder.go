// internal/poller/builder.go
package poller

import (
	"time"

	cfg "github.com/tamzrod/glove-bridge/internal/config"
	"github.com/tamzrod/glove-bridge/internal/frame"
	pmodbus "github.com/tamzrod/glove-bridge/internal/poller/modbus"
)

// Build constructs a Poller for the configured contact source.
// Only invalid poller config is an error; connection failures surface
// as failed PollResults.
// Modbus connections are reused while healthy.
// On transport death, Poller discards the client and uses factory on a future tick.
// No retries, no loops, no semantics.
func Build(b cfg.BridgeConfig) (*Poller, func() error, error) {
	interval := time.Duration(b.Poll.IntervalMs) * time.Millisecond

	if b.Source.Kind == cfg.SourceStatic {
		p, err := New(
			Config{
				SourceID: b.ID,
				Interval: interval,
				Reads:    []ReadBlock{{FC: 2, Address: 0, Quantity: frame.SensorCount}},
			},
			NewStaticClient(frame.SensorCount, b.Source.Static.Bits),
			nil,
		)
		if err != nil {
			return nil, nil, err
		}
		return p, func() error { return nil }, nil
	}

	m := b.Source.Modbus

	// client factory: ONE attempt per call
	factory := func() (Client, error) {
		c, err := pmodbus.New(pmodbus.Config{
			Mode:     m.Mode,
			Endpoint: m.Endpoint,
			UnitID:   m.UnitID,
			Timeout:  time.Duration(m.TimeoutMs) * time.Millisecond,
			BaudRate: m.BaudRate,
			DataBits: m.DataBits,
			StopBits: m.StopBits,
			Parity:   m.Parity,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	// initial client; an unreachable source is not fatal.
	// The poller starts without a client, the first tick fails and the
	// factory is retried on later ticks.
	client, err := factory()
	if err != nil {
		client = nil
	}

	reads := make([]ReadBlock, 0, len(b.Source.Reads))
	for _, r := range b.Source.Reads {
		reads = append(reads, ReadBlock{
			FC:       r.FC,
			Address:  r.Address,
			Quantity: r.Quantity,
		})
	}

	p, err := New(
		Config{
			SourceID: b.ID,
			Interval: interval,
			Reads:    reads,
		},
		client,
		factory,
	)
	if err != nil {
		return nil, nil, err
	}

	return p, p.Close, nil
}
