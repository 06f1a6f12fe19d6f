// Package heap implements a dynamic memory allocator over a single
// contiguous, growable byte region, with an explicit free list, first-fit
// placement, and immediate boundary-tag coalescing.
//
// # Overview
//
// A Heap manages blocks inside a region.Region. Every block is
// self-describing: a header word at its start and a footer word at its end
// both encode (size, allocated), so physical neighbors can be located in
// either direction without any auxiliary index. Free blocks reuse their
// payload words to store prev/next links of a circular doubly-linked free
// list anchored by a permanently-allocated sentinel block.
//
// # Block Layout
//
//	+--------+----------------------+--------+
//	| header | payload              | footer |
//	+--------+----------------------+--------+
//	  8 bytes  size - 16 bytes        8 bytes
//
// While a block is free, the first two payload words hold the free-list
// prev/next links instead of caller data. The minimum block size is
// therefore four words (32 bytes), enforced on every placement decision.
//
// # Heap Layout
//
// The region begins with a fixed bootstrap area:
//
//	[pad][prologue][free-list sentinel][ordinary blocks ...][epilogue]
//
// The prologue and epilogue are zero-payload, always-allocated boundary
// blocks; every neighbor computation terminates at one of them, so block
// walks never read outside the managed region.
//
// # Usage Example
//
//	h, err := heap.New(region.NewSlice(0), nil)
//	if err != nil {
//	    return err
//	}
//
//	ref, buf, err := h.Allocate(256)
//	if err != nil {
//	    return err
//	}
//
//	// Write through buf, which aliases the block's payload bytes...
//	copy(buf, payload)
//
//	// Later, release the block (or resize it in place).
//	h.Release(ref)
//
// # Placement Policy
//
// Allocation is strict first-fit over the free list in insertion order
// (LIFO). A fitting block is split when the remainder would itself be a
// legal block; otherwise it is consumed whole. When no block fits, the heap
// extends the region by max(request, Options.ChunkSize) and retries once.
// Request sizes can additionally be bumped through a configurable override
// table (see Options.SizeOverrides) to reduce fragmentation on known
// workload distributions.
//
// # Thread Safety
//
// Heap instances are not thread-safe. Callers must serialize access
// externally. Releasing a ref twice, or a ref that was never returned by
// Allocate or Resize, is undefined behavior and is not detected.
package heap
