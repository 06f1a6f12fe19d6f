package format

import "encoding/binary"

// Binary encoding utilities for heap words.
//
// Every piece of heap metadata (boundary tags and free-list links) is one
// little-endian uint64 written directly into the managed region.
//
// Implementation: uses encoding/binary.LittleEndian. The compiler inlines
// these calls and reduces them to single loads/stores with a bounds check,
// so there is no benefit to an unsafe variant.

// PutWord writes a word to the region at the given byte offset.
func PutWord(b []byte, off int, v uint64) {
	binary.LittleEndian.PutUint64(b[off:off+WordSize], v)
}

// ReadWord reads a word from the region at the given byte offset.
func ReadWord(b []byte, off int) uint64 {
	return binary.LittleEndian.Uint64(b[off : off+WordSize])
}
