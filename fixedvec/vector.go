package fixedvec

import (
	"fmt"

	"github.com/artem-zyktin/fixed-vector/alloc"
)

// Vector is a fixed-capacity sequence whose storage is one block obtained
// from an allocator of type A when the vector is built.
//
// Only data[:size] holds live elements. The rest of the block is kept at the
// zero value and is never visible through the API. A nil block marks a
// vector that was moved from or closed; it reports zero length and capacity.
// The zero Vector is in that state.
//
// A Vector is not safe for concurrent use.
type Vector[T any, A alloc.Allocator[T]] struct {
	data  []T
	size  int
	alloc A
	hooks hooks[T]

	// mods counts structural mutations; range loops use it to detect
	// invalidation.
	mods uint64
}

// Of is a Vector backed by the Go heap.
type Of[T any] = Vector[T, alloc.Heap[T]]

// NewWith creates an empty vector holding up to capacity elements, with its
// block obtained from a.
func NewWith[T any, A alloc.Allocator[T]](capacity int, a A) (*Vector[T, A], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrZeroCapacity, capacity)
	}

	data, err := allocate[T](a, capacity)
	if err != nil {
		return nil, err
	}

	return &Vector[T, A]{
		data:  data,
		alloc: a,
		hooks: hooksFor[T](),
	}, nil
}

// New creates an empty heap-backed vector holding up to capacity elements.
func New[T any](capacity int) (*Of[T], error) {
	return NewWith[T](capacity, alloc.Heap[T]{})
}

// MustNew is like New but panics on error.
func MustNew[T any](capacity int) *Of[T] {
	v, err := New[T](capacity)
	if err != nil {
		panic(err)
	}
	return v
}

// allocate obtains a block of exactly n slots from a.
func allocate[T any, A alloc.Allocator[T]](a A, n int) ([]T, error) {
	data, err := a.Allocate(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %d slots: %w", ErrAllocation, n, err)
	}
	if len(data) != n {
		if data != nil {
			_ = a.Deallocate(data)
		}
		return nil, fmt.Errorf("%w: allocator returned %d of %d slots", ErrAllocation, len(data), n)
	}
	return data, nil
}

// Close destroys the live elements in index order and gives the block back
// to the allocator. The vector is left with zero length and capacity.
// Closing a moved-from or already closed vector does nothing.
func (v *Vector[T, A]) Close() error {
	if v.data == nil {
		return nil
	}

	v.destroyAll()
	data := v.data
	v.reset()
	if err := v.alloc.Deallocate(data); err != nil {
		return fmt.Errorf("fixedvec: release block: %w", err)
	}
	return nil
}

// destroyAll ends the life of every live element; the block is kept.
func (v *Vector[T, A]) destroyAll() {
	for i := range v.data[:v.size] {
		v.hooks.destroy(&v.data[i])
	}
	v.size = 0
	v.mods++
}

// reset puts the vector in the released state without touching the block.
func (v *Vector[T, A]) reset() {
	v.data = nil
	v.size = 0
	v.mods++
}

// Len returns the number of live elements.
func (v *Vector[T, A]) Len() int { return v.size }

// Cap returns the number of slots in the block.
func (v *Vector[T, A]) Cap() int { return len(v.data) }

// Empty reports whether Len() == 0.
func (v *Vector[T, A]) Empty() bool { return v.size == 0 }

// Full reports whether Len() == Cap(). A released vector is both empty and full.
func (v *Vector[T, A]) Full() bool { return v.size == len(v.data) }

// Available returns the number of pushes left before the vector is full.
func (v *Vector[T, A]) Available() int { return len(v.data) - v.size }

// Allocator returns the allocator the current block came from.
func (v *Vector[T, A]) Allocator() A { return v.alloc }

// String implements fmt.Stringer.
func (v *Vector[T, A]) String() string {
	return fmt.Sprintf("fixedvec[%d/%d]", v.size, len(v.data))
}
