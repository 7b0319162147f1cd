// internal/writer/builder.go
package writer

import (
	"errors"
	"fmt"
	"time"

	cfg "github.com/tamzrod/glove-bridge/internal/config"
	"github.com/tamzrod/glove-bridge/internal/writer/ingest"
	wmodbus "github.com/tamzrod/glove-bridge/internal/writer/modbus"
)

// BuildPlan converts the mirror config into a Plan.
// Assumes config has already passed validation.
func BuildPlan(bridgeID string, m *cfg.MirrorConfig) (Plan, error) {
	if m == nil {
		return Plan{}, errors.New("writer: mirror not configured")
	}

	plan := Plan{
		BridgeID: bridgeID,
		Endpoint: m.Endpoint,
		UnitID:   m.UnitID,
		Address:  m.Address,
	}

	if m.StatusSlot != nil {
		plan.Status = &StatusPlan{
			UnitID:     m.UnitID,
			BaseSlot:   *m.StatusSlot,
			DeviceName: m.DeviceName,
		}
	}

	return plan, nil
}

// BuildEndpointClient connects to the mirror endpoint using its protocol.
func BuildEndpointClient(m *cfg.MirrorConfig) (endpointClient, func() error, error) {
	timeout := time.Duration(m.TimeoutMs) * time.Millisecond

	switch m.Protocol {
	case cfg.MirrorModbus:
		c, err := wmodbus.NewEndpointClient(wmodbus.Config{Endpoint: m.Endpoint, Timeout: timeout})
		if err != nil {
			return nil, nil, err
		}
		return c, c.Close, nil

	case cfg.MirrorIngest:
		c, err := ingest.NewEndpointClient(ingest.Config{Endpoint: m.Endpoint, Timeout: timeout})
		if err != nil {
			return nil, nil, err
		}
		return c, c.Close, nil

	default:
		return nil, nil, fmt.Errorf("writer: unknown mirror protocol %q", m.Protocol)
	}
}

// Mirror bundles the mask writer and the optional status writer
// that share one endpoint client.
type Mirror struct {
	Masks  Writer
	Status StatusWriter // nil when no status slot is configured
	close  func() error
}

// Close releases the endpoint client.
func (m *Mirror) Close() error {
	if m == nil || m.close == nil {
		return nil
	}
	fn := m.close
	m.close = nil
	return fn()
}

// Build constructs the mirror for a bridge. It returns nil, nil when no
// mirror is configured.
func Build(bridgeID string, m *cfg.MirrorConfig) (*Mirror, error) {
	if m == nil {
		return nil, nil
	}

	plan, err := BuildPlan(bridgeID, m)
	if err != nil {
		return nil, err
	}

	cli, closeFn, err := BuildEndpointClient(m)
	if err != nil {
		return nil, fmt.Errorf("writer: mirror endpoint %s: %w", m.Endpoint, err)
	}

	return newMirror(plan, cli, closeFn), nil
}

func newMirror(plan Plan, cli endpointClient, closeFn func() error) *Mirror {
	mir := &Mirror{
		Masks: New(plan, cli),
		close: closeFn,
	}
	if sw, ok := NewDeviceStatusWriter(plan, cli); ok {
		mir.Status = sw
	}
	return mir
}
