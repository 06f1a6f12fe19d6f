//go:build unix

package region

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Mapped is a Region backed by an anonymous memory mapping. The full maximum
// size is reserved PROT_NONE at construction and pages are committed
// read-write as the region grows, so the managed bytes keep a single stable
// base address for the region's whole lifetime.
type Mapped struct {
	reserved  []byte // full PROT_NONE reservation
	size      int    // bytes handed out via Extend
	committed int    // bytes with read-write protection (page multiple)
}

// NewMapped reserves max bytes of address space and returns an empty region
// that can grow up to that size. max is rounded up to a whole page.
func NewMapped(max int) (*Mapped, error) {
	if max <= 0 {
		return nil, ErrGrowFail
	}
	page := os.Getpagesize()
	max = (max + page - 1) &^ (page - 1)

	data, err := unix.Mmap(-1, 0, max, unix.PROT_NONE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("region: reserve %d bytes: %w", max, err)
	}
	return &Mapped{reserved: data}, nil
}

func (m *Mapped) Bytes() []byte { return m.reserved[:m.size] }

func (m *Mapped) Size() int { return m.size }

// Extend commits enough pages to cover n more bytes and returns the offset
// of the first new byte. Fails with ErrLimit once the reservation is
// exhausted; the committed range is untouched on failure.
func (m *Mapped) Extend(n int) (int, error) {
	if n <= 0 {
		return 0, ErrGrowFail
	}
	if m.size+n > len(m.reserved) {
		return 0, ErrLimit
	}

	page := os.Getpagesize()
	need := (m.size + n + page - 1) &^ (page - 1)
	if need > len(m.reserved) {
		need = len(m.reserved)
	}
	if need > m.committed {
		err := unix.Mprotect(m.reserved[m.committed:need], unix.PROT_READ|unix.PROT_WRITE)
		if err != nil {
			return 0, fmt.Errorf("region: commit pages: %w", err)
		}
		m.committed = need
	}

	off := m.size
	m.size += n
	return off, nil
}

// Close releases the reservation. The region must not be used afterwards.
func (m *Mapped) Close() error {
	if m.reserved == nil {
		return nil
	}
	err := unix.Munmap(m.reserved)
	m.reserved = nil
	m.size = 0
	m.committed = 0
	if errors.Is(err, unix.EINVAL) {
		// Treat double-unmap as no-op for callers.
		return nil
	}
	return err
}

// Compile-time interface check
var _ Region = (*Mapped)(nil)
