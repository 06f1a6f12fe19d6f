package format

import "testing"

func TestPackRoundTrip(t *testing.T) {
	cases := []struct {
		size      int
		allocated bool
	}{
		{0, true},
		{MinBlockSize, false},
		{MinBlockSize, true},
		{64, false},
		{1 << 12, true},
		{1 << 30, false},
	}
	for _, c := range cases {
		w := Pack(c.size, c.allocated)
		if got := SizeOf(w); got != c.size {
			t.Fatalf("SizeOf(Pack(%d, %v)) = %d", c.size, c.allocated, got)
		}
		if got := IsAllocated(w); got != c.allocated {
			t.Fatalf("IsAllocated(Pack(%d, %v)) = %v", c.size, c.allocated, got)
		}
	}
}

func TestPackFlagDoesNotDisturbSize(t *testing.T) {
	w := Pack(96, true)
	if w != 96|AllocBit {
		t.Fatalf("unexpected word: %#x", w)
	}
	if SizeOf(w) != SizeOf(Pack(96, false)) {
		t.Fatalf("size differs with allocation flag")
	}
}

func TestWordRoundTrip(t *testing.T) {
	b := make([]byte, 4*WordSize)
	PutWord(b, WordSize, Pack(48, true))
	if got := ReadWord(b, WordSize); got != Pack(48, true) {
		t.Fatalf("word round trip: %#x", got)
	}
	// Neighboring words stay zero.
	if ReadWord(b, 0) != 0 || ReadWord(b, 2*WordSize) != 0 {
		t.Fatalf("write touched neighboring words")
	}
}
