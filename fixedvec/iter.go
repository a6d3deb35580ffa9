package fixedvec

import "iter"

// Iteration
//
// The sequences below read the vector when they are ranged over, not when
// they are created, so each range sees the current elements. A push, emplace,
// remove, pop, clear, assignment or close made by the loop body invalidates
// the loop: the next step panics with ErrInvalidated. Set and writes through
// Ref/AtRef are not structural and are allowed.

// All returns the live elements with their indexes, front to back.
func (v *Vector[T, A]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		mods := v.mods
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data[i]) {
				return
			}
			if v.mods != mods {
				panic(ErrInvalidated)
			}
		}
	}
}

// Values returns the live elements front to back.
func (v *Vector[T, A]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.All() {
			if !yield(x) {
				return
			}
		}
	}
}

// Backward returns the live elements with their indexes, back to front.
func (v *Vector[T, A]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		mods := v.mods
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.data[i]) {
				return
			}
			if v.mods != mods {
				panic(ErrInvalidated)
			}
		}
	}
}
