package region

// Slice is a Region backed by an ordinary byte slice. The zero value is an
// empty region with no growth limit.
type Slice struct {
	data  []byte
	limit int
}

// NewSlice returns a slice-backed region. limit caps the total size in
// bytes; a limit of 0 means unlimited. A limit below the bootstrap needs of
// a heap makes every growth request fail, which is how out-of-space paths
// are exercised in tests.
func NewSlice(limit int) *Slice {
	return &Slice{limit: limit}
}

func (s *Slice) Bytes() []byte { return s.data }

func (s *Slice) Size() int { return len(s.data) }

// Extend appends n zeroed bytes and returns the offset of the first one.
func (s *Slice) Extend(n int) (int, error) {
	if n <= 0 {
		return 0, ErrGrowFail
	}
	if s.limit > 0 && len(s.data)+n > s.limit {
		return 0, ErrLimit
	}
	off := len(s.data)
	s.data = append(s.data, make([]byte, n)...)
	return off, nil
}

// SetLimit adjusts the growth limit. Setting a limit at or below the current
// size makes all further growth fail without disturbing existing bytes.
func (s *Slice) SetLimit(limit int) {
	s.limit = limit
}

// Compile-time interface check
var _ Region = (*Slice)(nil)
