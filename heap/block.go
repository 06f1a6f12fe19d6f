package heap

import "github.com/joshuapare/heapkit/internal/format"

// Block navigation helpers. A block is identified by the byte offset of its
// payload within the region ("bp"); its header sits one word before the
// payload and its footer one word before the block's end. All helpers are
// pure functions of the region bytes plus the declared sizes, so they stay
// valid across region growth as long as the data slice is re-fetched.

// hdr returns the offset of the block's header word.
func hdr(bp int) int {
	return bp - format.TagSize
}

// ftr returns the offset of the block's footer word, derived from the size
// declared in its header.
func ftr(data []byte, bp int) int {
	return bp + blockSize(data, bp) - format.Overhead
}

// blockSize returns the total size declared in the block's header.
func blockSize(data []byte, bp int) int {
	return format.SizeOf(format.ReadWord(data, hdr(bp)))
}

// blockAllocated returns the allocation flag declared in the block's header.
func blockAllocated(data []byte, bp int) bool {
	return format.IsAllocated(format.ReadWord(data, hdr(bp)))
}

// nextBlock returns the payload offset of the physical successor.
func nextBlock(data []byte, bp int) int {
	return bp + blockSize(data, bp)
}

// prevBlock returns the payload offset of the physical predecessor, located
// through the predecessor's footer one word before this block's header.
func prevBlock(data []byte, bp int) int {
	return bp - format.SizeOf(format.ReadWord(data, bp-format.Overhead))
}

// writeTags stamps matching header and footer words for the block.
func writeTags(data []byte, bp, size int, allocated bool) {
	w := format.Pack(size, allocated)
	format.PutWord(data, bp-format.TagSize, w)
	format.PutWord(data, bp+size-format.Overhead, w)
}

// capacity returns the usable payload bytes of the block.
func capacity(data []byte, bp int) int {
	return blockSize(data, bp) - format.Overhead
}

// payload returns the slice aliasing the block's payload bytes.
func payload(data []byte, bp int) []byte {
	return data[bp : bp+capacity(data, bp)]
}
