// internal/sensor/bank.go
package sensor

// Bank holds the most recent contact bits delivered by the poller.
// It is owned by the orchestrator goroutine: Store, Clear and reads
// all happen on the same tick, so no locking is done here.
type Bank struct {
	bits []bool
}

// NewBank returns an empty bank sized for n bits.
func NewBank(n int) *Bank {
	return &Bank{bits: make([]bool, 0, n)}
}

// Store replaces the bank contents with bits.
func (b *Bank) Store(bits []bool) {
	b.bits = append(b.bits[:0], bits...)
}

// Clear drops every bit. All readers report false until the next Store.
func (b *Bank) Clear() {
	b.bits = b.bits[:0]
}

// Bit returns bit i. Bits beyond the stored length are false.
func (b *Bank) Bit(i int) bool {
	if i < 0 || i >= len(b.bits) {
		return false
	}
	return b.bits[i]
}

// Len returns the number of stored bits.
func (b *Bank) Len() int { return len(b.bits) }

// BitReader is a Reader backed by one bank bit.
type BitReader struct {
	Bank *Bank
	Bit  int
}

func (r BitReader) InContact() bool {
	if r.Bank == nil {
		return false
	}
	return r.Bank.Bit(r.Bit)
}
