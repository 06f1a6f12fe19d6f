package heap

// Stats holds internal allocator counters for testing and instrumentation.
type Stats struct {
	AllocCalls   int // Total Allocate() calls
	ReleaseCalls int // Total Release() calls on non-nil refs
	ResizeCalls  int // Total Resize() calls on non-nil refs

	AllocFastPath int // Allocations satisfied from the free list
	AllocSlowPath int // Allocations that required region growth

	Splits       int // Placements that split a free block
	GrowsInPlace int // Resizes absorbed into a free successor

	CoalesceNext int // Merges with the successor only
	CoalescePrev int // Merges with the predecessor only
	CoalesceBoth int // Merges with both neighbors

	GrowCalls int   // Region extensions performed
	GrowBytes int64 // Total bytes added via extensions

	BytesAllocated int64 // Total block bytes handed out (headers included)
	BytesFreed     int64 // Total block bytes released
}

// Stats returns a snapshot of the allocator counters.
func (h *Heap) Stats() Stats {
	return h.stats
}
