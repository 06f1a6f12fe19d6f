// Package region provides the contiguous, growable byte regions that back a
// heap. A Region hands out additional bytes on request, always immediately
// following the previously returned bytes, and never reclaims them: growth is
// monotonic for the lifetime of the region.
//
// Two backends are provided. Slice keeps the bytes in an ordinary Go slice
// and is the default everywhere, including tests. Mapped reserves a fixed
// maximum up front with an anonymous mapping (unix only) and commits pages on
// demand, so the managed bytes never move in the process address space.
package region

import "errors"

var (
	// ErrLimit indicates the region cannot grow further without exceeding
	// its configured maximum.
	ErrLimit = errors.New("region: growth limit reached")

	// ErrGrowFail indicates an invalid or failed growth request.
	ErrGrowFail = errors.New("region: grow failed")
)

// Region is the growth primitive a heap consumes. Implementations are not
// safe for concurrent use.
type Region interface {
	// Bytes returns the managed bytes. The slice must be re-fetched after
	// every Extend; a slice obtained earlier may be a stale view.
	Bytes() []byte

	// Size returns the current number of managed bytes.
	Size() int

	// Extend grows the region by n bytes and returns the offset of the
	// first new byte. The new bytes are zeroed and immediately follow the
	// previously managed bytes. On failure the region is unchanged; there
	// is no partial growth.
	Extend(n int) (int, error)
}
