package heap

import "github.com/joshuapare/heapkit/internal/format"

// The explicit free list is a circular doubly-linked list threaded through
// the payload words of free blocks: word 0 holds the prev link, word 1 the
// next link, each stored as the linked block's payload offset. The anchor is
// a fixed sentinel block written during bootstrap. The sentinel is marked
// allocated so the coalescer never merges a neighbor into it, and it is
// never unlinked.

// listPrev returns the free-list predecessor of bp.
func listPrev(data []byte, bp int) int {
	return int(format.ReadWord(data, bp))
}

// listNext returns the free-list successor of bp.
func listNext(data []byte, bp int) int {
	return int(format.ReadWord(data, bp+format.WordSize))
}

func setListPrev(data []byte, bp, prev int) {
	format.PutWord(data, bp, uint64(prev))
}

func setListNext(data []byte, bp, next int) {
	format.PutWord(data, bp+format.WordSize, uint64(next))
}

// listAdd inserts bp immediately after the sentinel (LIFO). bp must not
// already be linked.
func (h *Heap) listAdd(data []byte, bp int) {
	head := listNext(data, h.sentinel)
	setListPrev(data, head, bp)
	setListNext(data, bp, head)
	setListPrev(data, bp, h.sentinel)
	setListNext(data, h.sentinel, bp)
}

// listRemove unlinks bp from between its neighbors. bp must be linked.
func (h *Heap) listRemove(data []byte, bp int) {
	prev := listPrev(data, bp)
	next := listNext(data, bp)
	setListNext(data, prev, next)
	setListPrev(data, next, prev)
}

// findFit walks the free list from the sentinel's successor and returns the
// first block whose size covers asize. The walk stops once it returns to
// the sentinel.
func (h *Heap) findFit(data []byte, asize int) (int, bool) {
	for bp := listNext(data, h.sentinel); bp != h.sentinel; bp = listNext(data, bp) {
		if blockSize(data, bp) >= asize {
			return bp, true
		}
	}
	return 0, false
}
