// internal/sensor/id.go
package sensor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tamzrod/glove-bridge/internal/frame"
)

// ID identifies one sensor slot on the hand.
type ID struct {
	Channel frame.Channel
	Segment frame.Segment
	Slot    int
}

// channel name prefixes, indexed by frame.Channel
var prefixes = [frame.ChannelCount]byte{'T', 'I', 'M', 'R'}

// Valid reports whether the ID addresses one of the 64 slots.
func (id ID) Valid() bool {
	return id.Channel.Valid() && id.Segment.Valid() &&
		id.Slot >= 0 && id.Slot < frame.SlotsPerSegment
}

// Name returns the canonical sensor name, e.g. "TCell1_1" or "RCell2_8".
// Segment and slot are 1-based in names.
func (id ID) Name() string {
	if !id.Valid() {
		return fmt.Sprintf("invalid(%d,%d,%d)", int(id.Channel), int(id.Segment), id.Slot)
	}
	return fmt.Sprintf("%cCell%d_%d", prefixes[id.Channel], int(id.Segment)+1, id.Slot+1)
}

func (id ID) String() string { return id.Name() }

// Index returns the position of the ID in canonical wire order (0..63).
func (id ID) Index() int {
	return (int(id.Channel)*frame.SegmentsPerChannel+int(id.Segment))*frame.SlotsPerSegment + id.Slot
}

// ParseName is the inverse of Name.
func ParseName(name string) (ID, error) {
	if name == "" {
		return ID{}, fmt.Errorf("sensor: empty name")
	}
	rest, ok := strings.CutPrefix(name[1:], "Cell")
	if !ok {
		return ID{}, fmt.Errorf("sensor: malformed name %q", name)
	}

	segStr, slotStr, ok := strings.Cut(rest, "_")
	if !ok {
		return ID{}, fmt.Errorf("sensor: malformed name %q", name)
	}
	seg, err := strconv.Atoi(segStr)
	if err != nil {
		return ID{}, fmt.Errorf("sensor: bad segment in %q: %w", name, err)
	}
	slot, err := strconv.Atoi(slotStr)
	if err != nil {
		return ID{}, fmt.Errorf("sensor: bad slot in %q: %w", name, err)
	}

	ch := frame.Channel(-1)
	for i, p := range prefixes {
		if p == name[0] {
			ch = frame.Channel(i)
		}
	}

	id := ID{Channel: ch, Segment: frame.Segment(seg - 1), Slot: slot - 1}
	if !id.Valid() || id.Name() != name {
		return ID{}, fmt.Errorf("sensor: unknown sensor %q", name)
	}
	return id, nil
}

// All lists every sensor slot in canonical wire order.
func All() []ID {
	out := make([]ID, 0, frame.SensorCount)
	for _, c := range frame.Channels {
		for g := 0; g < frame.SegmentsPerChannel; g++ {
			for s := 0; s < frame.SlotsPerSegment; s++ {
				out = append(out, ID{Channel: c, Segment: frame.Segment(g), Slot: s})
			}
		}
	}
	return out
}
