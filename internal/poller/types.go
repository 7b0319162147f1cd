// internal/poller/types.go
package poller

import "time"

// ReadBlock describes one Modbus bit read.
// Geometry only: no semantics.
type ReadBlock struct {
	FC       uint8 // 1 coils, 2 discrete inputs
	Address  uint16
	Quantity uint16
}

// PollResult is a snapshot produced by one poll cycle.
type PollResult struct {
	SourceID string
	At       time.Time

	// Bits holds every block's bits concatenated in configured order.
	// Bit i of the result is the bank bit sensors are bound to.
	Bits []bool

	Err error // non-nil means the poll cycle failed; Bits is nil
}
