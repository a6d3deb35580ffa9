package fixedvec

import (
	"fmt"

	"github.com/artem-zyktin/fixed-vector/internal/buf"
)

// Index returns the element at index i without checking it against Len().
// Only the runtime's check against the block applies: an index in
// [Len(), Cap()) reads a zero slot, anything else panics with a runtime error.
// Use At when i is not known to be live.
func (v *Vector[T, A]) Index(i int) T {
	return v.data[i]
}

// Ref is the unchecked counterpart of AtRef.
func (v *Vector[T, A]) Ref(i int) *T {
	return &v.data[i]
}

// At returns the element at index i. It panics with an error wrapping
// ErrOutOfRange unless 0 <= i < Len().
func (v *Vector[T, A]) At(i int) T {
	v.checkIndex("At", i)
	return v.data[i]
}

// AtRef returns a pointer to the element at index i, valid until the next
// structural change. It panics like At.
func (v *Vector[T, A]) AtRef(i int) *T {
	v.checkIndex("AtRef", i)
	return &v.data[i]
}

// Get returns the element at index i, or an error wrapping ErrOutOfRange.
func (v *Vector[T, A]) Get(i int) (T, error) {
	if err := buf.CheckIndex(i, v.size); err != nil {
		var zero T
		return zero, fmt.Errorf("fixedvec: Get: %w", err)
	}
	return v.data[i], nil
}

// Front returns the first element. It panics like At on an empty vector.
func (v *Vector[T, A]) Front() T {
	v.checkIndex("Front", 0)
	return v.data[0]
}

// Back returns the last element. It panics like At on an empty vector.
func (v *Vector[T, A]) Back() T {
	v.checkIndex("Back", v.size-1)
	return v.data[v.size-1]
}

// Slice returns the live elements. The slice aliases the block and has no
// spare capacity; it is invalidated by the next structural change.
func (v *Vector[T, A]) Slice() []T {
	return v.data[:v.size:v.size]
}

func (v *Vector[T, A]) checkIndex(op string, i int) {
	if err := buf.CheckIndex(i, v.size); err != nil {
		panic(fmt.Errorf("fixedvec: %s: %w", op, err))
	}
}
