package heap

import (
	"fmt"
	"io"

	"github.com/joshuapare/heapkit/internal/format"
)

// Dump writes a block-by-block listing of the heap to w, one line per block
// with both boundary tags decoded. It is a debugging observer and never
// mutates heap state.
func (h *Heap) Dump(w io.Writer) {
	data := h.r.Bytes()
	fmt.Fprintf(w, "heap: base=%#x size=%d free-list sentinel=%#x\n", h.base, h.r.Size(), h.sentinel)

	bp := h.base + prologueOff
	for {
		size := blockSize(data, bp)
		if size == 0 {
			fmt.Fprintf(w, "%#08x: end of heap\n", bp)
			return
		}
		hword := format.ReadWord(data, hdr(bp))
		fword := format.ReadWord(data, ftr(data, bp))
		fmt.Fprintf(w, "%#08x: header [%d:%c] footer [%d:%c]",
			bp, format.SizeOf(hword), stateChar(format.IsAllocated(hword)),
			format.SizeOf(fword), stateChar(format.IsAllocated(fword)))
		if bp == h.sentinel {
			fmt.Fprintf(w, " <- free-list sentinel (prev=%#x next=%#x)",
				listPrev(data, bp), listNext(data, bp))
		} else if !format.IsAllocated(hword) {
			fmt.Fprintf(w, " (prev=%#x next=%#x)", listPrev(data, bp), listNext(data, bp))
		}
		fmt.Fprintln(w)

		next := nextBlock(data, bp)
		if next <= bp || hdr(next) >= h.r.Size() {
			fmt.Fprintf(w, "%#08x: walk aborted (corrupt size %d)\n", bp, size)
			return
		}
		bp = next
	}
}

func stateChar(allocated bool) byte {
	if allocated {
		return 'a'
	}
	return 'f'
}
