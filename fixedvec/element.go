package fixedvec

import "reflect"

// Cloner is implemented by element types whose copies must not share state
// with the original. Copying a vector (Clone, CopyFrom, PushCopy) calls
// Clone on every element it copies; plain assignment is used otherwise.
type Cloner[T any] interface {
	Clone() T
}

// Releaser is implemented by element types that own something to give back
// when the element is destroyed: Remove, Clear, Set, Close and the reuse path
// of CopyFrom and MoveFrom call Release exactly once per destroyed element.
// Elements that are moved out (Move, MoveFrom, PopBack) are not released.
type Releaser interface {
	Release()
}

// hooks caches the lifecycle methods of T, resolved once per vector.
type hooks[T any] struct {
	clone   func(T) T
	release func(*T)
}

// When T is a pointer type its methods are reached through the element
// itself, and a nil element is copied and destroyed without calling them.
func hooksFor[T any]() hooks[T] {
	var h hooks[T]
	var zero T

	isNil := func(T) bool { return false }
	if reflect.TypeFor[T]().Kind() == reflect.Pointer {
		isNil = func(v T) bool { return any(v) == any(zero) }
	}

	if _, ok := any(zero).(Cloner[T]); ok {
		h.clone = func(v T) T {
			if isNil(v) {
				return v
			}
			return any(v).(Cloner[T]).Clone()
		}
	} else if _, ok := any(&zero).(Cloner[T]); ok {
		h.clone = func(v T) T { return any(&v).(Cloner[T]).Clone() }
	}

	if _, ok := any(&zero).(Releaser); ok {
		h.release = func(p *T) { any(p).(Releaser).Release() }
	} else if _, ok := any(zero).(Releaser); ok {
		h.release = func(p *T) {
			if isNil(*p) {
				return
			}
			any(*p).(Releaser).Release()
		}
	}
	return h
}

// copyOf is copy construction of a single element.
func (h *hooks[T]) copyOf(v T) T {
	if h.clone != nil {
		return h.clone(v)
	}
	return v
}

// destroy ends the life of the element in slot p and zeroes the slot.
func (h *hooks[T]) destroy(p *T) {
	if h.release != nil {
		h.release(p)
	}
	var zero T
	*p = zero
}
