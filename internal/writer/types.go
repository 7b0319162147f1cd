// internal/writer/types.go
package writer

import "github.com/tamzrod/glove-bridge/internal/frame"

// StatusPlan places the link status block on the mirror endpoint.
type StatusPlan struct {
	UnitID     uint8
	BaseSlot   uint16
	DeviceName string
}

// Plan is the fully-built mirror plan for one bridge.
type Plan struct {
	BridgeID string
	Endpoint string
	UnitID   uint8
	Address  uint16 // first of the mask registers

	Status *StatusPlan // nil => status block disabled
}

// Writer publishes frame snapshots to the mirror.
type Writer interface {
	Write(s frame.Snapshot) error
}
