package fixedvec

import "fmt"

// PushBack appends x. It panics with an error wrapping ErrFull when the
// vector is full; the vector never grows.
func (v *Vector[T, A]) PushBack(x T) {
	v.mustHaveRoom()
	v.data[v.size] = x
	v.size++
	v.mods++
}

// PushCopy appends a copy of x, made with Clone when T implements Cloner.
// It panics like PushBack when the vector is full.
func (v *Vector[T, A]) PushCopy(x T) {
	v.mustHaveRoom()
	v.data[v.size] = v.hooks.copyOf(x)
	v.size++
	v.mods++
}

// TryPushBack appends x, or returns an error wrapping ErrFull.
func (v *Vector[T, A]) TryPushBack(x T) error {
	if v.size == len(v.data) {
		return fmt.Errorf("%w: capacity %d", ErrFull, len(v.data))
	}
	v.PushBack(x)
	return nil
}

// EmplaceBack constructs a new last element in place: the slot starts at the
// zero value and init, if not nil, fills it. The returned pointer is valid
// until the next structural change. It panics like PushBack when the vector
// is full. If init panics the slot is zeroed again and the vector is
// unchanged.
func (v *Vector[T, A]) EmplaceBack(init func(*T)) *T {
	v.mustHaveRoom()
	p := &v.data[v.size]
	if init != nil {
		done := false
		defer func() {
			if !done {
				var zero T
				*p = zero
			}
		}()
		init(p)
		done = true
	}
	v.size++
	v.mods++
	return p
}

// Remove destroys the element at index i in O(1) by moving the last element
// into its slot. Order is not preserved: removing index 1 from [1 2 3 4]
// leaves [1 4 3]. It panics with an error wrapping ErrOutOfRange unless
// 0 <= i < Len().
func (v *Vector[T, A]) Remove(i int) {
	v.checkIndex("Remove", i)

	last := v.size - 1
	if i != last {
		v.data[i], v.data[last] = v.data[last], v.data[i]
	}
	v.hooks.destroy(&v.data[last])
	v.size--
	v.mods++
}

// PopBack removes the last element and returns it. Ownership passes to the
// caller, so Release is not called. ok is false when the vector is empty.
func (v *Vector[T, A]) PopBack() (x T, ok bool) {
	if v.size == 0 {
		return x, false
	}
	v.size--
	x = v.data[v.size]
	var zero T
	v.data[v.size] = zero
	v.mods++
	return x, true
}

// Clear destroys every element in index order. The block is kept, so the
// vector can be filled to the same capacity again.
func (v *Vector[T, A]) Clear() {
	v.destroyAll()
}

// Set destroys the element at index i and stores x in its place.
// It panics with an error wrapping ErrOutOfRange unless 0 <= i < Len().
func (v *Vector[T, A]) Set(i int, x T) {
	v.checkIndex("Set", i)
	v.hooks.destroy(&v.data[i])
	v.data[i] = x
}

func (v *Vector[T, A]) mustHaveRoom() {
	if v.size == len(v.data) {
		panic(fmt.Errorf("%w: capacity %d", ErrFull, len(v.data)))
	}
}
