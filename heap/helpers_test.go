package heap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/internal/format"
	"github.com/joshuapare/heapkit/region"
)

// blockInfo is one entry from a physical heap walk, used by tests to assert
// on heap structure.
type blockInfo struct {
	bp   int
	size int
	free bool
}

// newTestHeap builds a heap over an unlimited slice region.
func newTestHeap(t testing.TB, opts *Options) *Heap {
	t.Helper()
	h, err := New(region.NewSlice(0), opts)
	require.NoError(t, err)
	return h
}

// walkBlocks returns every block between the prologue and the epilogue,
// sentinel included, in physical order.
func walkBlocks(t testing.TB, h *Heap) []blockInfo {
	t.Helper()
	data := h.r.Bytes()

	var blocks []blockInfo
	for bp := h.base + prologueOff; ; bp = nextBlock(data, bp) {
		size := blockSize(data, bp)
		if size == 0 {
			return blocks
		}
		require.Less(t, bp+size, h.r.Size()+format.TagSize, "walk ran past region end")
		blocks = append(blocks, blockInfo{bp: bp, size: size, free: !blockAllocated(data, bp)})
	}
}

// ordinaryBlocks strips the prologue and sentinel from a walk, leaving only
// blocks created by allocation and growth.
func ordinaryBlocks(t testing.TB, h *Heap) []blockInfo {
	t.Helper()
	all := walkBlocks(t, h)
	require.GreaterOrEqual(t, len(all), 2, "bootstrap blocks missing")
	require.Equal(t, h.base+prologueOff, all[0].bp)
	require.Equal(t, h.sentinel, all[1].bp)
	return all[2:]
}

// requireConsistent asserts that Check finds nothing.
func requireConsistent(t testing.TB, h *Heap) {
	t.Helper()
	problems := h.Check()
	require.Empty(t, problems, "heap invariants violated: %v", problems)
}

// requireConserved asserts that the pad word, every block, and the epilogue
// tag account for the full region with no gaps.
func requireConserved(t testing.TB, h *Heap) {
	t.Helper()
	total := format.WordSize + format.TagSize
	for _, b := range walkBlocks(t, h) {
		total += b.size
	}
	require.Equal(t, h.r.Size()-h.base, total, "blocks do not tile the region")
}

// freeBlocks returns the free subset of the ordinary blocks.
func freeBlocks(t testing.TB, h *Heap) []blockInfo {
	t.Helper()
	var free []blockInfo
	for _, b := range ordinaryBlocks(t, h) {
		if b.free {
			free = append(free, b)
		}
	}
	return free
}
