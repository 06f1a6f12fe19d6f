//go:build !unix

package region

// Mapped falls back to a slice-backed region on platforms without anonymous
// mappings. The limit still caps growth at the reserved maximum.
type Mapped struct {
	Slice
}

// NewMapped returns an empty region that can grow up to max bytes.
func NewMapped(max int) (*Mapped, error) {
	if max <= 0 {
		return nil, ErrGrowFail
	}
	return &Mapped{Slice{limit: max}}, nil
}

// Close releases nothing; the slice backing is garbage collected.
func (m *Mapped) Close() error { return nil }

// Compile-time interface check
var _ Region = (*Mapped)(nil)
