package heap

import (
	"fmt"

	"github.com/joshuapare/heapkit/internal/format"
)

// Problem is one advisory finding from Check. Problems never alter heap
// state; they exist so tests and debugging sessions can assert on the heap's
// structural invariants.
type Problem struct {
	Ref Ref // payload offset of the offending block, or NilRef for list-level findings
	Msg string
}

func (p Problem) String() string {
	return fmt.Sprintf("block %#x: %s", p.Ref, p.Msg)
}

// Check performs a full, non-mutating heap walk and reports every invariant
// violation it finds: misaligned blocks, header/footer mismatches, bad
// sentinels, adjacent uncoalesced free blocks, and disagreements between the
// free list and the set of physically free blocks. An empty result means
// the walk found a consistent heap.
func (h *Heap) Check() []Problem {
	var problems []Problem
	report := func(bp int, msg string, args ...any) {
		problems = append(problems, Problem{Ref: bp, Msg: fmt.Sprintf(msg, args...)})
	}

	data := h.r.Bytes()
	end := h.r.Size()

	pro := h.base + prologueOff
	if blockSize(data, pro) != format.DWordSize || !blockAllocated(data, pro) {
		report(pro, "bad prologue header")
	}
	if !blockAllocated(data, h.sentinel) {
		report(h.sentinel, "free-list sentinel not marked allocated")
	}

	// Physical walk from the first block after the prologue to the epilogue.
	physFree := make(map[int]bool)
	prevWasFree := false
	bp := nextBlock(data, pro)
	for {
		if hdr(bp) >= end {
			report(bp, "walk ran past region end without epilogue")
			break
		}
		size := blockSize(data, bp)
		if size == 0 {
			if !blockAllocated(data, bp) {
				report(bp, "bad epilogue header")
			}
			if hdr(bp) != end-format.TagSize {
				report(bp, "epilogue not at region end")
			}
			break
		}
		if !format.IsDWordAligned(bp) {
			report(bp, "payload not double-word aligned")
		}
		if size < format.MinBlockSize || !format.IsDWordAligned(size) {
			report(bp, "illegal block size %d", size)
			break // size arithmetic is untrustworthy from here on
		}
		if bp+size > end {
			report(bp, "block overruns region end")
			break
		}
		if format.ReadWord(data, hdr(bp)) != format.ReadWord(data, ftr(data, bp)) {
			report(bp, "header does not match footer")
		}
		free := !blockAllocated(data, bp)
		if free {
			physFree[bp] = true
			if prevWasFree {
				report(bp, "adjacent free blocks not coalesced")
			}
		}
		prevWasFree = free
		bp = nextBlock(data, bp)
	}

	// Free-list walk: every entry must be a free block found by the physical
	// walk, exactly once, and every physically free block must be linked.
	seen := make(map[int]bool)
	steps := 0
	for lp := listNext(data, h.sentinel); lp != h.sentinel; lp = listNext(data, lp) {
		if hdr(lp) < h.base || hdr(lp) >= end || !format.IsDWordAligned(lp) {
			report(lp, "free-list link points outside the heap")
			break
		}
		if steps++; steps > len(physFree)+1 {
			report(NilRef, "free list does not cycle back to the sentinel")
			break
		}
		if seen[lp] {
			report(lp, "block linked into the free list twice")
			break
		}
		seen[lp] = true
		if blockAllocated(data, lp) {
			report(lp, "allocated block on the free list")
		}
		if !physFree[lp] {
			report(lp, "free-list entry not found by heap walk")
		}
		if next := listNext(data, lp); listPrev(data, next) != lp {
			report(lp, "free-list links not doubly consistent")
		}
	}
	for bp := range physFree {
		if !seen[bp] {
			report(bp, "free block missing from the free list")
		}
	}

	return problems
}
