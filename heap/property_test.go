package heap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test_RandomAllocReleaseResize_GuardInvariants performs a randomized
// allocate/release/resize workload and validates the structural invariants
// and live payload contents as it goes.
func Test_RandomAllocReleaseResize_GuardInvariants(t *testing.T) {
	h := newTestHeap(t, nil)

	rng := rand.New(rand.NewSource(42)) // Fixed seed for reproducibility
	live := make(map[Ref][]byte)        // ref -> shadow copy of written bytes

	fill := func(buf []byte, n int) []byte {
		shadow := make([]byte, n)
		rng.Read(shadow)
		copy(buf, shadow)
		return shadow
	}
	anyRef := func() Ref {
		for ref := range live {
			return ref
		}
		return NilRef
	}

	for i := 0; i < 600; i++ {
		switch rng.Intn(3) {
		case 0: // allocate
			n := 1 + rng.Intn(600)
			ref, buf, err := h.Allocate(n)
			require.NoError(t, err, "step %d: allocate %d", i, n)
			require.GreaterOrEqual(t, len(buf), n)
			live[ref] = fill(buf, n)

		case 1: // release
			if ref := anyRef(); ref != NilRef {
				h.Release(ref)
				delete(live, ref)
			}

		case 2: // resize
			ref := anyRef()
			if ref == NilRef {
				break
			}
			n := 1 + rng.Intn(1200)
			newRef, buf, err := h.Resize(ref, n)
			require.NoError(t, err, "step %d: resize to %d", i, n)

			// The first min(previous write, n) bytes must survive the move.
			keep := len(live[ref])
			if n < keep {
				keep = n
			}
			require.Equal(t, live[ref][:keep], buf[:keep], "step %d: payload lost across resize", i)

			delete(live, ref)
			live[newRef] = fill(buf, n)
		}

		if i%25 == 0 {
			requireConsistent(t, h)
			requireConserved(t, h)
		}
	}

	// All surviving payloads must still hold their shadow contents.
	data := h.r.Bytes()
	for ref, shadow := range live {
		require.True(t, blockAllocated(data, ref))
		require.Equal(t, shadow, payload(data, ref)[:len(shadow)], "payload at %#x corrupted", ref)
	}

	for ref := range live {
		h.Release(ref)
	}
	requireConsistent(t, h)
	requireConserved(t, h)
	t.Logf("600 random operations completed, all invariants held")
}

// Test_RandomChurn_ReusesFreedSpace drains and refills the heap repeatedly;
// steady-state churn of identical working sets must not keep growing the
// region.
func Test_RandomChurn_ReusesFreedSpace(t *testing.T) {
	h := newTestHeap(t, nil)
	rng := rand.New(rand.NewSource(7)) // Fixed seed for reproducibility

	sizes := make([]int, 32)
	for i := range sizes {
		sizes[i] = 1 + rng.Intn(256)
	}

	refs := make([]Ref, 0, len(sizes))
	allocateAll := func() {
		for _, n := range sizes {
			ref, _, err := h.Allocate(n)
			require.NoError(t, err)
			refs = append(refs, ref)
		}
	}
	releaseAll := func() {
		for _, ref := range refs {
			h.Release(ref)
		}
		refs = refs[:0]
	}

	allocateAll()
	grownAfterFirstRound := h.Stats().GrowBytes
	releaseAll()

	for i := 0; i < 20; i++ {
		allocateAll()
		releaseAll()
	}

	require.Equal(t, grownAfterFirstRound, h.Stats().GrowBytes,
		"steady-state churn must be served from freed space")
	requireConsistent(t, h)

	// Everything released: the heap collapses back to one free block.
	require.Len(t, freeBlocks(t, h), 1)
}
