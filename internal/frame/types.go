// internal/frame/types.go
package frame

import "fmt"

// Channel is one tracked finger. Order is wire order.
type Channel int

const (
	Thumb Channel = iota
	Index
	Middle
	Ring
)

// Channels lists every channel in wire order.
var Channels = [ChannelCount]Channel{Thumb, Index, Middle, Ring}

func (c Channel) String() string {
	switch c {
	case Thumb:
		return "thumb"
	case Index:
		return "index"
	case Middle:
		return "middle"
	case Ring:
		return "ring"
	default:
		return fmt.Sprintf("channel(%d)", int(c))
	}
}

// Valid reports whether c is one of the four tracked channels.
func (c Channel) Valid() bool {
	return c >= Thumb && c <= Ring
}

// Segment is one tracked region of a channel.
type Segment int

const (
	Segment0 Segment = iota
	Segment1
)

// Valid reports whether s is a tracked segment.
func (s Segment) Valid() bool {
	return s == Segment0 || s == Segment1
}

// Readings holds the contact state of one segment, ordered by sensor slot.
type Readings [SlotsPerSegment]bool

// Hand is the contact state of every sensor at one polling instant.
type Hand [ChannelCount][SegmentsPerChannel]Readings

// Mask is a packed segment: bit i is set iff slot i is in contact.
type Mask uint8

// Snapshot holds the eight segment masks of one frame.
type Snapshot [ChannelCount][SegmentsPerChannel]Mask

// Masks returns the masks flattened in wire order.
func (s Snapshot) Masks() [ChannelCount * SegmentsPerChannel]Mask {
	var out [ChannelCount * SegmentsPerChannel]Mask
	for c := 0; c < ChannelCount; c++ {
		for g := 0; g < SegmentsPerChannel; g++ {
			out[c*SegmentsPerChannel+g] = s[c][g]
		}
	}
	return out
}
