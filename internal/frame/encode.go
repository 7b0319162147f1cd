// internal/frame/encode.go
package frame

import "strconv"

// EncodeSegment packs one segment into a mask.
// Slot 0 is the least significant bit.
func EncodeSegment(r Readings) Mask {
	var m Mask
	for i, on := range r {
		if on {
			m |= 1 << uint(i)
		}
	}
	return m
}

// Capture packs every segment of the hand.
func Capture(h Hand) Snapshot {
	var s Snapshot
	for c := range h {
		for g := range h[c] {
			s[c][g] = EncodeSegment(h[c][g])
		}
	}
	return s
}

// Format renders the snapshot as a FrameString.
// Layout is protocol-locked: thumb-0, thumb-1, index-0 ... ring-1,
// each three digits, then Suffix.
func (s Snapshot) Format() string {
	buf := make([]byte, 0, FrameLen)
	for _, m := range s.Masks() {
		buf = appendPadded(buf, m)
	}
	buf = append(buf, Suffix...)
	return string(buf)
}

// EncodeFrame converts a hand reading into its FrameString.
// No IO. No side effects.
func EncodeFrame(h Hand) string {
	return Capture(h).Format()
}

// Wrap adds the transport delimiters around a FrameString.
func Wrap(f string) []byte {
	out := make([]byte, 0, len(f)+2)
	out = append(out, Open)
	out = append(out, f...)
	return append(out, Close)
}

func appendPadded(buf []byte, m Mask) []byte {
	switch {
	case m < 10:
		buf = append(buf, '0', '0')
	case m < 100:
		buf = append(buf, '0')
	}
	return strconv.AppendUint(buf, uint64(m), 10)
}
