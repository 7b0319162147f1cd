// internal/frame/constants.go
package frame

// Frame layout constants.
// These values define the wire protocol and MUST NOT be configurable.

// ---- HAND GEOMETRY ----

// ChannelCount is the number of tracked channels (fingers).
const ChannelCount = 4

// SegmentsPerChannel is the number of tracked segments per channel.
const SegmentsPerChannel = 2

// SlotsPerSegment is the number of contact sensors per segment.
const SlotsPerSegment = 8

// SensorCount is the total number of sensor slots on one hand.
const SensorCount = ChannelCount * SegmentsPerChannel * SlotsPerSegment

// ---- FRAME STRING ----

// MaskDigits is the zero-padded decimal width of one segment mask.
const MaskDigits = 3

// Suffix is appended verbatim after the masks.
// It carries no known meaning; it is kept for receiver compatibility.
const Suffix = "000000"

// FrameLen is the exact length of every FrameString.
const FrameLen = ChannelCount*SegmentsPerChannel*MaskDigits + len(Suffix)

// ---- TRANSPORT DELIMITERS ----

// Open and Close wrap a FrameString on the wire.
const (
	Open  = '<'
	Close = '>'
)
