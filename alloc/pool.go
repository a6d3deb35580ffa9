package alloc

import (
	"fmt"
	"unsafe"
)

const defaultMaxFreePerClass = 16

// PoolStats reports how a Pool served its requests.
type PoolStats struct {
	Hits     int // Allocate served from a free list
	Misses   int // Allocate fell through to the heap
	Unpooled int // Requests above the largest class
	Retained int // Blocks currently held on free lists
	Dropped  int // Releases discarded because the class list was full
}

// Pool recycles released blocks through segregated free lists.
//
// Allocate rounds count up to its size class and returns block[:count] with
// the class capacity underneath, so Deallocate can recover the whole block.
// Counts above the largest class are served by the Go heap and dropped on
// release.
type Pool[T any] struct {
	table   *sizeClassTable
	free    [][][]T
	maxFree int
	stats   PoolStats
}

// NewPool creates a pool using the given size class configuration.
func NewPool[T any](config SizeClassConfig) *Pool[T] {
	table := newSizeClassTable(config)
	maxFree := config.MaxFreePerClass
	if maxFree <= 0 {
		maxFree = defaultMaxFreePerClass
	}
	return &Pool[T]{
		table:   table,
		free:    make([][][]T, table.NumClasses()),
		maxFree: maxFree,
	}
}

// Allocate returns a zeroed block of count slots, reusing a released block
// of the same class when one is available.
func (p *Pool[T]) Allocate(count int) ([]T, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}

	c := p.table.classOf(count)
	if c < 0 {
		p.stats.Unpooled++
		return make([]T, count), nil
	}

	if list := p.free[c]; len(list) > 0 {
		block := list[len(list)-1]
		list[len(list)-1] = nil
		p.free[c] = list[:len(list)-1]
		p.stats.Hits++
		p.stats.Retained--
		return block[:count], nil
	}

	p.stats.Misses++
	return make([]T, count, p.table.capacityOf(c)), nil
}

// Deallocate zeroes the block and keeps it for reuse when its class list has
// room. A block already on its free list is rejected with ErrUnknownBlock so
// a double release cannot hand the same storage out twice.
func (p *Pool[T]) Deallocate(block []T) error {
	if block == nil {
		return ErrUnknownBlock
	}

	c := p.table.classOf(len(block))
	if c < 0 {
		clear(block)
		return nil
	}
	if cap(block) != p.table.capacityOf(c) {
		return fmt.Errorf("%w: capacity %d does not match class %d (%d)",
			ErrUnknownBlock, cap(block), c, p.table.capacityOf(c))
	}

	full := block[:cap(block)]
	for _, f := range p.free[c] {
		if unsafe.SliceData(f) == unsafe.SliceData(full) {
			return fmt.Errorf("%w: block already released", ErrUnknownBlock)
		}
	}
	clear(full)

	if len(p.free[c]) >= p.maxFree {
		p.stats.Dropped++
		return nil
	}
	p.free[c] = append(p.free[c], full)
	p.stats.Retained++
	return nil
}

// Stats returns a snapshot of the pool counters.
func (p *Pool[T]) Stats() PoolStats {
	return p.stats
}

// Config returns the size class configuration the pool was built with.
func (p *Pool[T]) Config() SizeClassConfig {
	return p.table.config
}

// Reset drops every retained block.
func (p *Pool[T]) Reset() {
	for i := range p.free {
		clear(p.free[i])
		p.free[i] = p.free[i][:0]
	}
	p.stats.Retained = 0
}
