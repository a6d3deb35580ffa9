package alloc

import "unsafe"

// Stats summarizes the traffic through a Tracked allocator.
type Stats struct {
	Allocations   int // Successful Allocate calls
	Deallocations int // Successful Deallocate calls
	Failures      int // Allocate calls that returned an error
	LiveBlocks    int // Blocks handed out and not yet released
	LiveSlots     int // Slots across the live blocks
	PeakSlots     int // High-water mark of LiveSlots
}

// Tracked wraps an Allocator and records what it hands out.
//
// Blocks are identified by their first slot, so zero-sized element types
// cannot be told apart; Tracked is meant for tests and diagnostics.
type Tracked[T any] struct {
	inner Allocator[T]
	live  map[*T]int
	stats Stats
}

// NewTracked wraps inner. A nil inner uses Heap.
func NewTracked[T any](inner Allocator[T]) *Tracked[T] {
	if inner == nil {
		inner = Heap[T]{}
	}
	return &Tracked[T]{
		inner: inner,
		live:  make(map[*T]int),
	}
}

// Allocate forwards to the wrapped allocator and records the block.
func (t *Tracked[T]) Allocate(count int) ([]T, error) {
	block, err := t.inner.Allocate(count)
	if err != nil {
		t.stats.Failures++
		return nil, err
	}

	t.live[unsafe.SliceData(block)] = len(block)
	t.stats.Allocations++
	t.stats.LiveBlocks++
	t.stats.LiveSlots += len(block)
	t.stats.PeakSlots = max(t.stats.PeakSlots, t.stats.LiveSlots)
	return block, nil
}

// Deallocate rejects blocks it never handed out, then forwards.
func (t *Tracked[T]) Deallocate(block []T) error {
	if block == nil {
		return ErrUnknownBlock
	}
	key := unsafe.SliceData(block)
	n, ok := t.live[key]
	if !ok {
		return ErrUnknownBlock
	}
	if err := t.inner.Deallocate(block); err != nil {
		return err
	}

	delete(t.live, key)
	t.stats.Deallocations++
	t.stats.LiveBlocks--
	t.stats.LiveSlots -= n
	return nil
}

// Stats returns a snapshot of the counters.
func (t *Tracked[T]) Stats() Stats {
	return t.stats
}

// Inner returns the wrapped allocator.
func (t *Tracked[T]) Inner() Allocator[T] {
	return t.inner
}
