// internal/writer/status_writer.go
package writer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/glove-bridge/internal/status"
)

// StatusWriter is the delivery-only contract for link status.
// It receives a snapshot and writes it verbatim.
// No logic, no interpretation.
type StatusWriter interface {
	WriteStatus(s status.Snapshot) error
}

// deviceStatusWriter is the concrete implementation used by the bridge.
type deviceStatusWriter struct {
	plan *StatusPlan
	cli  endpointClient
	ep   string

	needFull bool
	last     status.Snapshot
	nameRegs []uint16
}

// NewDeviceStatusWriter builds a status writer if status is enabled.
// If plan.Status is nil, status is disabled.
func NewDeviceStatusWriter(plan Plan, cli endpointClient) (StatusWriter, bool) {
	if plan.Status == nil {
		return nil, false
	}

	sp := plan.Status

	return &deviceStatusWriter{
		plan:     sp,
		cli:      cli,
		ep:       plan.Endpoint,
		needFull: true, // full re-assert on first successful write
		last: status.Snapshot{
			Health: status.HealthUnknown,
		},
		nameRegs: status.EncodeDeviceName(sp.DeviceName),
	}, true
}

// WriteStatus delivers a link status snapshot into status memory.
// On any write failure, the next successful call will re-assert the full block.
func (sw *deviceStatusWriter) WriteStatus(s status.Snapshot) error {
	if sw == nil || sw.plan == nil {
		return errors.New("status writer: disabled")
	}
	if sw.cli == nil {
		return fmt.Errorf("status writer: missing client for endpoint %s", sw.ep)
	}

	baseAddr := sw.baseAddr()
	unitID := sw.plan.UnitID

	// ------------------------------------------------------------
	// Full block write (identity re-assert)
	// ------------------------------------------------------------
	if sw.needFull {
		regs := sw.fullBlockRegs(s)

		if err := sw.cli.WriteRegisters(areaHoldingRegisters, unitID, baseAddr, regs); err != nil {
			sw.needFull = true
			return fmt.Errorf("status writer: full block write failed: %w", err)
		}

		sw.needFull = false
		sw.last = s
		return nil
	}

	var errs []string

	write := func(slot uint16, regs []uint16, what string) bool {
		if err := sw.cli.WriteRegisters(areaHoldingRegisters, unitID, baseAddr+slot, regs); err != nil {
			errs = append(errs, fmt.Sprintf("slot%d %s write failed: %v", slot, what, err))
			return false
		}
		return true
	}

	// Slot 0: health_code
	if sw.last.Health != s.Health && write(status.SlotHealthCode, []uint16{s.Health}, "health") {
		sw.last.Health = s.Health
	}

	// Slot 1: last_error_code
	if sw.last.LastErrorCode != s.LastErrorCode && write(status.SlotLastErrorCode, []uint16{s.LastErrorCode}, "last_error") {
		sw.last.LastErrorCode = s.LastErrorCode
	}

	// Slot 2: seconds_in_error
	if sw.last.SecondsInError != s.SecondsInError && write(status.SlotSecondsInError, []uint16{s.SecondsInError}, "seconds") {
		sw.last.SecondsInError = s.SecondsInError
	}

	// Slots 3-4: frames_sent, always as a pair
	if sw.last.FramesSent != s.FramesSent {
		pair := []uint16{uint16(s.FramesSent >> 16), uint16(s.FramesSent)}
		if write(status.SlotFramesSentHi, pair, "frames_sent") {
			sw.last.FramesSent = s.FramesSent
		}
	}

	if len(errs) > 0 {
		// Any partial failure: re-assert the full block on next success.
		sw.needFull = true
		return errors.New("status writer: " + strings.Join(errs, " | "))
	}

	return nil
}

func (sw *deviceStatusWriter) baseAddr() uint16 {
	// Each bridge owns a fixed SlotsPerDevice block.
	return sw.plan.BaseSlot * status.SlotsPerDevice
}

func (sw *deviceStatusWriter) fullBlockRegs(s status.Snapshot) []uint16 {
	regs := status.Encode(s)

	// Reserved slots stay zero; device name always lives at the end of the block
	copy(regs[status.SlotDeviceNameStart:status.SlotDeviceNameEnd+1], sw.nameRegs)

	return regs
}
