// internal/poller/static.go
package poller

// StaticClient serves a fixed bit image for bench use.
// Coils and discrete inputs read the same image.
type StaticClient struct {
	bits []bool
}

// NewStaticClient returns a client of size bits with the listed bits high.
// Indices outside [0,size) are ignored.
func NewStaticClient(size int, high []int) *StaticClient {
	bits := make([]bool, size)
	for _, i := range high {
		if i >= 0 && i < size {
			bits[i] = true
		}
	}
	return &StaticClient{bits: bits}
}

func (s *StaticClient) ReadCoils(addr, qty uint16) ([]bool, error) {
	return s.read(addr, qty), nil
}

func (s *StaticClient) ReadDiscreteInputs(addr, qty uint16) ([]bool, error) {
	return s.read(addr, qty), nil
}

// read returns qty bits from addr; bits past the image are false.
func (s *StaticClient) read(addr, qty uint16) []bool {
	out := make([]bool, qty)
	for i := range out {
		j := int(addr) + i
		if j < len(s.bits) {
			out[i] = s.bits[j]
		}
	}
	return out
}
