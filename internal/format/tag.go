package format

// Boundary-tag codec. A tag word packs a block's total size together with its
// allocation state:
//
//	Bits 63..4  block size in bytes (always a multiple of DWordSize)
//	Bits  3..1  reserved, always zero
//	Bit      0  allocation flag (1 = allocated, 0 = free)
//
// The same word is written at both ends of a block, which lets a block's
// physical predecessor be located by reading one word backward from the
// header without any separate index.

// Pack encodes a block size and allocation state into a tag word.
// size must be double-word aligned; Pack does not re-align it.
func Pack(size int, allocated bool) uint64 {
	w := uint64(size)
	if allocated {
		w |= AllocBit
	}
	return w
}

// SizeOf extracts the block size from a tag word.
func SizeOf(word uint64) int {
	return int(word &^ uint64(DWordMask))
}

// IsAllocated extracts the allocation flag from a tag word.
func IsAllocated(word uint64) bool {
	return word&AllocBit != 0
}
