package heap

import (
	"fmt"
	"os"

	"github.com/joshuapare/heapkit/internal/format"
	"github.com/joshuapare/heapkit/region"
)

// Runtime debug flag for allocation logging - controlled by HEAP_LOG_ALLOC env var.
var logAlloc = os.Getenv("HEAP_LOG_ALLOC") != ""

// Ref identifies an allocated block: the byte offset of its payload within
// the region. NilRef is never a valid payload offset and acts as the null
// reference.
type Ref = int

// NilRef is the null block reference.
const NilRef Ref = 0

// Bootstrap layout, in words from the region start: one alignment pad word,
// prologue header+footer, the four-word free-list sentinel block, and the
// epilogue header.
const (
	bootstrapWords = 8
	bootstrapSize  = bootstrapWords * format.WordSize

	prologueOff = 2 * format.WordSize // prologue payload offset
	sentinelOff = 4 * format.WordSize // sentinel payload offset
)

// Heap is a first-fit, boundary-tag allocator over a contiguous region.
// Multiple independent heaps may coexist, each owning its own region from
// offset zero. Not safe for concurrent use.
type Heap struct {
	r        region.Region
	base     int // region offset of the bootstrap area
	sentinel int // payload offset of the free-list sentinel
	opts     Options
	stats    Stats
}

// New lays down the bootstrap blocks on r and seeds the heap with one chunk
// of usable free space. r must be empty or end on a double-word boundary;
// the heap owns all bytes of r from that point on. A nil opts selects the
// defaults.
func New(r region.Region, opts *Options) (*Heap, error) {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	base, err := r.Extend(bootstrapSize)
	if err != nil {
		return nil, fmt.Errorf("heap: bootstrap: %w", err)
	}
	if !format.IsDWordAligned(base) {
		return nil, ErrBadRegion
	}

	h := &Heap{
		r:        r,
		base:     base,
		sentinel: base + sentinelOff,
		opts:     o,
	}

	data := r.Bytes()
	// Pad word at base stays zero. The prologue and epilogue are zero-payload
	// allocated blocks bounding every boundary-tag computation; the sentinel
	// is marked allocated so the coalescer never merges into it.
	writeTags(data, base+prologueOff, format.DWordSize, true)
	writeTags(data, h.sentinel, format.MinBlockSize, true)
	setListPrev(data, h.sentinel, h.sentinel)
	setListNext(data, h.sentinel, h.sentinel)
	format.PutWord(data, base+(bootstrapWords-1)*format.WordSize, format.Pack(0, true))

	// Seed real usable space with one chunk-sized free block.
	if _, err := h.extend(o.ChunkSize / format.WordSize); err != nil {
		return nil, err
	}
	return h, nil
}

// Allocate returns a block with at least n bytes of payload. The returned
// slice aliases the block's payload in the region and is valid until the
// block is released or resized. n <= 0 fails with ErrBadSize and no side
// effects; a failed region growth fails with ErrNoSpace, leaving the heap
// unchanged.
func (h *Heap) Allocate(n int) (Ref, []byte, error) {
	h.stats.AllocCalls++
	if n <= 0 {
		return NilRef, nil, ErrBadSize
	}
	asize := h.opts.adjusted(n)

	data := h.r.Bytes()
	if bp, ok := h.findFit(data, asize); ok {
		h.stats.AllocFastPath++
		h.place(data, bp, asize)
		h.stats.BytesAllocated += int64(blockSize(data, bp))
		return bp, payload(data, bp), nil
	}

	// No fit: extend by at least one chunk, then place into the new block.
	grow := asize
	if grow < h.opts.ChunkSize {
		grow = h.opts.ChunkSize
	}
	if logAlloc {
		fmt.Fprintf(os.Stderr, "[HEAP] no fit for %d (asize=%d), extending by %d\n", n, asize, grow)
	}
	bp, err := h.extend(grow / format.WordSize)
	if err != nil {
		return NilRef, nil, err
	}
	h.stats.AllocSlowPath++
	data = h.r.Bytes()
	h.place(data, bp, asize)
	h.stats.BytesAllocated += int64(blockSize(data, bp))
	return bp, payload(data, bp), nil
}

// Release frees the block at ref and coalesces it with free neighbors.
// Release(NilRef) is a no-op. Releasing a ref twice, or one that was never
// returned by Allocate or Resize, is undefined behavior.
func (h *Heap) Release(ref Ref) {
	if ref == NilRef {
		return
	}
	h.stats.ReleaseCalls++

	data := h.r.Bytes()
	size := blockSize(data, ref)
	h.stats.BytesFreed += int64(size)
	writeTags(data, ref, size, false)
	h.coalesce(data, ref)
}

// Resize changes the block at ref to hold at least n payload bytes.
//
// Resize(ref, 0) behaves as Release(ref) and returns NilRef, so
// Resize(NilRef, 0) is a no-op. Resize(NilRef, n) behaves as Allocate(n).
//
// If the block already covers n, the same ref is returned and the tail is
// not reclaimed. If the physical successor is free and large enough, the
// block grows in place with no data movement. Otherwise a new block is
// allocated, min(old capacity, n) payload bytes are copied, and the old
// block is released. A failed fallback allocation leaves the original block
// valid and unmodified.
func (h *Heap) Resize(ref Ref, n int) (Ref, []byte, error) {
	if n == 0 {
		if ref != NilRef {
			h.stats.ResizeCalls++
		}
		h.Release(ref)
		return NilRef, nil, nil
	}
	if ref == NilRef {
		return h.Allocate(n)
	}
	h.stats.ResizeCalls++
	if n < 0 {
		return NilRef, nil, ErrBadSize
	}

	asize := h.opts.adjusted(n)
	data := h.r.Bytes()
	oldSize := blockSize(data, ref)

	// Shrink or unchanged: keep the block as-is.
	if asize <= oldSize {
		return ref, payload(data, ref), nil
	}

	// Grow in place when the successor is free and covers the shortfall.
	next := nextBlock(data, ref)
	if !blockAllocated(data, next) && oldSize+blockSize(data, next) >= asize {
		combined := oldSize + blockSize(data, next)
		h.stats.GrowsInPlace++
		h.stats.BytesAllocated += int64(combined - oldSize)
		h.listRemove(data, next)
		writeTags(data, ref, combined, true)
		return ref, payload(data, ref), nil
	}

	// Fallback: allocate, copy, release. The copy is capped by the source
	// block's own capacity; the requested size may be far larger.
	newRef, buf, err := h.Allocate(n)
	if err != nil {
		return NilRef, nil, err
	}
	data = h.r.Bytes() // Allocate may have grown the region
	copyLen := oldSize - format.Overhead
	if n < copyLen {
		copyLen = n
	}
	copy(buf[:copyLen], data[ref:ref+copyLen])
	h.Release(ref)
	return newRef, buf, nil
}

// Size returns the current region size in bytes, sentinel blocks included.
func (h *Heap) Size() int {
	return h.r.Size() - h.base
}

// extend grows the region by the given word count (rounded up to an even
// number of words), writes the new free block and epilogue, and coalesces
// the new block with a possibly-free left neighbor. Returns the payload
// offset of the resulting free block. The heap is unchanged on failure.
func (h *Heap) extend(words int) (int, error) {
	size := format.EvenWords(words) * format.WordSize

	off, err := h.r.Extend(size)
	if err != nil {
		if logAlloc {
			fmt.Fprintf(os.Stderr, "[HEAP] extend %d failed: %v\n", size, err)
		}
		return NilRef, fmt.Errorf("%w: %v", ErrNoSpace, err)
	}
	h.stats.GrowCalls++
	h.stats.GrowBytes += int64(size)

	// The new block's payload starts where the region previously ended: its
	// header overwrites the old epilogue, and a fresh epilogue is stamped at
	// the new region end.
	data := h.r.Bytes()
	bp := off
	writeTags(data, bp, size, false)
	format.PutWord(data, bp+size-format.TagSize, format.Pack(0, true))

	return h.coalesce(data, bp), nil
}

// place carves an allocated block of asize bytes out of the free block bp,
// splitting when the remainder is itself a legal block and consuming the
// block whole otherwise. bp is unlinked either way; a split tail is linked
// back in.
func (h *Heap) place(data []byte, bp, asize int) {
	csize := blockSize(data, bp)
	h.listRemove(data, bp)

	if csize-asize >= format.MinBlockSize {
		h.stats.Splits++
		writeTags(data, bp, asize, true)
		tail := bp + asize
		writeTags(data, tail, csize-asize, false)
		h.listAdd(data, tail)
		return
	}
	writeTags(data, bp, csize, true)
}

// coalesce merges the free block bp with free physical neighbors, examined
// through boundary tags, and links the resulting block into the free list
// exactly once. Returns the payload offset of the merged block.
func (h *Heap) coalesce(data []byte, bp int) int {
	prevFree := !format.IsAllocated(format.ReadWord(data, bp-format.Overhead))
	next := nextBlock(data, bp)
	nextFree := !blockAllocated(data, next)
	size := blockSize(data, bp)

	switch {
	case !prevFree && !nextFree:
		// Nothing to merge.

	case !prevFree && nextFree:
		h.stats.CoalesceNext++
		h.listRemove(data, next)
		size += blockSize(data, next)
		writeTags(data, bp, size, false)

	case prevFree && !nextFree:
		h.stats.CoalescePrev++
		bp = prevBlock(data, bp)
		h.listRemove(data, bp)
		size += blockSize(data, bp)
		writeTags(data, bp, size, false)

	default:
		h.stats.CoalesceBoth++
		prev := prevBlock(data, bp)
		h.listRemove(data, prev)
		h.listRemove(data, next)
		size += blockSize(data, prev) + blockSize(data, next)
		bp = prev
		writeTags(data, bp, size, false)
	}

	h.listAdd(data, bp)
	return bp
}
