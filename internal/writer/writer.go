// internal/writer/writer.go
package writer

import (
	"fmt"

	"github.com/tamzrod/glove-bridge/internal/frame"
)

// areaHoldingRegisters is the only area the mirror writes.
const areaHoldingRegisters byte = 3

// endpointClient is the exact contract the writers use.
// IMPORTANT: There must be NO other version of this interface anywhere.
type endpointClient interface {
	WriteRegisters(area byte, unitID uint8, addr uint16, regs []uint16) error
}

type maskWriter struct {
	plan Plan
	cli  endpointClient
}

// New builds the mask writer for plan.
func New(plan Plan, cli endpointClient) Writer {
	return &maskWriter{
		plan: plan,
		cli:  cli,
	}
}

// Write sends the eight segment masks as eight holding registers,
// one mask per register, in wire order.
func (w *maskWriter) Write(s frame.Snapshot) error {
	if w.cli == nil {
		return fmt.Errorf("writer: missing client for endpoint %s", w.plan.Endpoint)
	}

	masks := s.Masks()
	regs := make([]uint16, len(masks))
	for i, m := range masks {
		regs[i] = uint16(m)
	}

	if err := w.cli.WriteRegisters(areaHoldingRegisters, w.plan.UnitID, w.plan.Address, regs); err != nil {
		return fmt.Errorf(
			"writer: ep=%s unit=%d addr=%d err=%w",
			w.plan.Endpoint, w.plan.UnitID, w.plan.Address, err,
		)
	}
	return nil
}
