// Package format houses the low-level block codec for the heap layout.
// The goal is to keep the bit-level encoding focused, allocation-free, and
// independent from the public API so the heap package can orchestrate blocks
// in a more ergonomic form.
package format

const (
	// WordSize is the size of one machine word in bytes. Headers, footers,
	// and free-list links each occupy exactly one word.
	WordSize = 8

	// DWordSize is the double-word alignment unit. Every block starts on a
	// 16-byte boundary and every block size is a multiple of 16.
	DWordSize = 2 * WordSize

	// TagSize is the number of bytes used by one boundary tag. Each block
	// carries two: a header at its start and a footer at its end.
	TagSize = WordSize

	// Overhead is the per-block metadata cost (header + footer).
	Overhead = 2 * TagSize

	// MinBlockSize is the smallest legal block: header, footer, and room for
	// the two free-list link words that occupy the payload while free.
	MinBlockSize = 4 * WordSize

	// AllocBit is the low-order header/footer bit holding the allocation
	// state. The alignment invariant keeps the low 4 size bits zero, so the
	// flag shares the word with the size without loss.
	AllocBit = 0x1

	// DWordMask is the mask for double-word alignment arithmetic.
	DWordMask = DWordSize - 1
)
