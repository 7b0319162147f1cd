// internal/sensor/table.go
package sensor

import (
	"fmt"

	"github.com/tamzrod/glove-bridge/internal/frame"
)

// Reader is a single contact detector.
type Reader interface {
	InContact() bool
}

// Table maps every sensor slot to its Reader.
// The (4,2,8) shape is fixed; a nil entry is an unbound slot and reads false.
type Table struct {
	slots [frame.ChannelCount][frame.SegmentsPerChannel][frame.SlotsPerSegment]Reader
}

// NewTable returns an empty table. Every slot starts unbound.
func NewTable() *Table {
	return &Table{}
}

// Bind attaches r to the slot addressed by id.
// A slot can be bound once.
func (t *Table) Bind(id ID, r Reader) error {
	if !id.Valid() {
		return fmt.Errorf("sensor table: invalid sensor %s", id)
	}
	if r == nil {
		return fmt.Errorf("sensor table: nil reader for %s", id)
	}
	if t.slots[id.Channel][id.Segment][id.Slot] != nil {
		return fmt.Errorf("sensor table: %s already bound", id)
	}
	t.slots[id.Channel][id.Segment][id.Slot] = r
	return nil
}

// Bound reports whether id has a reader.
func (t *Table) Bound(id ID) bool {
	return id.Valid() && t.slots[id.Channel][id.Segment][id.Slot] != nil
}

// Unbound lists every slot without a reader, in wire order.
func (t *Table) Unbound() []ID {
	var out []ID
	for _, id := range All() {
		if !t.Bound(id) {
			out = append(out, id)
		}
	}
	return out
}

// Sample reads every bound slot once.
func (t *Table) Sample() frame.Hand {
	var h frame.Hand
	for c := range t.slots {
		for g := range t.slots[c] {
			for s, r := range t.slots[c][g] {
				h[c][g][s] = r != nil && r.InContact()
			}
		}
	}
	return h
}
