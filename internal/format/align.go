package format

// Alignment utilities for the heap layout. Block addresses and sizes must be
// aligned to the double-word unit so the low header bits stay free for flags.

// AlignDWord returns n aligned up to the next 16-byte double-word boundary.
// Used for adjusted block sizes.
//
// Example:
//
//	AlignDWord(1)  = 16
//	AlignDWord(16) = 16
//	AlignDWord(17) = 32
func AlignDWord(n int) int {
	return (n + DWordMask) & ^DWordMask
}

// EvenWords rounds a word count up to an even number of words, preserving
// double-word alignment of extension sizes.
//
// Example:
//
//	EvenWords(3) = 4
//	EvenWords(4) = 4
func EvenWords(words int) int {
	if words%2 != 0 {
		return words + 1
	}
	return words
}

// IsDWordAligned reports whether off sits on a double-word boundary.
func IsDWordAligned(off int) bool {
	return off&DWordMask == 0
}
