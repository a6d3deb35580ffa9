package fixedvec

import "fmt"

// Clone returns a copy of v with its own block of the same capacity
// (not length), obtained from a copy of v's allocator. Elements are copied in
// order; element types implementing Cloner are deep-copied.
//
// Cloning a released vector yields a released vector.
func (v *Vector[T, A]) Clone() (*Vector[T, A], error) {
	c := &Vector[T, A]{
		alloc: v.alloc,
		hooks: v.hooks,
	}
	if v.data == nil {
		return c, nil
	}

	data, err := allocate[T](c.alloc, len(v.data))
	if err != nil {
		return nil, err
	}
	c.data = data
	c.copyElements(v)
	return c, nil
}

// Move transfers the block, the elements and the allocator of v to a new
// vector and leaves v released (zero length and capacity). No element is
// copied or destroyed. Move never fails.
func (v *Vector[T, A]) Move() *Vector[T, A] {
	m := &Vector[T, A]{
		data:  v.data,
		size:  v.size,
		alloc: v.alloc,
		hooks: v.hooks,
	}
	var zero A
	v.alloc = zero
	v.reset()
	return m
}

// CopyFrom makes v an element-wise copy of src.
//
// When v's block is at least as large as src's, v keeps its block and its
// allocator: the current elements are destroyed and src's are copied in.
// Otherwise a block of src's capacity is obtained from src's allocator, which
// v adopts, and v's old block goes back to the allocator it came from.
// If that allocation fails v is left untouched. The reuse path keeps v's
// allocator on purpose: a block always goes back to the allocator it came from.
//
// Assigning a vector to itself does nothing.
func (v *Vector[T, A]) CopyFrom(src *Vector[T, A]) error {
	if v == src {
		return nil
	}

	var releaseErr error
	if len(v.data) < len(src.data) {
		data, err := allocate[T](src.alloc, len(src.data))
		if err != nil {
			return err
		}
		releaseErr = v.swapBlock(data, src.alloc)
	} else {
		v.destroyAll()
	}

	v.hooks = src.hooks
	v.copyElements(src)
	return releaseErr
}

// MoveFrom transfers the elements of src into v and leaves src released.
//
// When v's block is at least as large as src's, the elements are relocated
// into v's block and src's block goes back to src's allocator. Otherwise v
// gives its old block back and takes over src's block and allocator.
// Either way v's previous elements are destroyed and src's are not.
//
// The only error is a failed block release; v and src are in their final
// state regardless.
func (v *Vector[T, A]) MoveFrom(src *Vector[T, A]) error {
	if v == src {
		return nil
	}

	v.hooks = src.hooks
	if len(v.data) < len(src.data) {
		n := src.size
		err := v.swapBlock(src.data, src.alloc)
		v.size = n
		var zero A
		src.alloc = zero
		src.reset()
		return err
	}

	v.destroyAll()
	n := copy(v.data, src.data[:src.size])
	v.size = n

	if src.data == nil {
		return nil
	}
	old, oldAlloc := src.data, src.alloc
	clear(old[:src.size])
	var zero A
	src.alloc = zero
	src.reset()
	if err := oldAlloc.Deallocate(old); err != nil {
		return fmt.Errorf("fixedvec: release source block: %w", err)
	}
	return nil
}

// swapBlock destroys v's elements, hands v's block back to v's allocator and
// installs data, obtained from a, as the new empty block.
func (v *Vector[T, A]) swapBlock(data []T, a A) error {
	v.destroyAll()
	old, oldAlloc := v.data, v.alloc
	v.data, v.alloc = data, a
	v.mods++

	if old == nil {
		return nil
	}
	if err := oldAlloc.Deallocate(old); err != nil {
		return fmt.Errorf("fixedvec: release previous block: %w", err)
	}
	return nil
}

// copyElements copy-constructs src's live elements into v's empty block.
func (v *Vector[T, A]) copyElements(src *Vector[T, A]) {
	for i, e := range src.data[:src.size] {
		v.data[i] = v.hooks.copyOf(e)
	}
	v.size = src.size
	v.mods++
}
