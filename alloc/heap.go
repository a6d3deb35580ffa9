package alloc

// Heap allocates blocks on the Go heap. The zero value is ready to use.
type Heap[T any] struct{}

// Allocate returns make([]T, count).
func (Heap[T]) Allocate(count int) ([]T, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}
	return make([]T, count), nil
}

// Deallocate zeroes the block so referenced values can be collected.
func (Heap[T]) Deallocate(block []T) error {
	if block == nil {
		return ErrUnknownBlock
	}
	clear(block)
	return nil
}
