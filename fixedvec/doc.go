// Package fixedvec provides a fixed-capacity, contiguous sequence container.
//
// # Overview
//
// A Vector gets exactly one block of slots from its allocator when it is
// built and never grows. Pushing onto a full vector is a programming error
// and panics; it does not trigger a reallocation. The only way a vector ends
// up with a different block is assignment from a vector of larger capacity.
//
//	v, err := fixedvec.New[int](4)
//	if err != nil {
//	    return err
//	}
//	defer v.Close()
//
//	v.PushBack(1)
//	v.PushBack(2)
//	v.PushBack(3)
//	v.PushBack(4)
//	v.Remove(1) // [1 4 3]
//
// # Removal Order
//
// Remove is swap-and-pop: the last element moves into the removed slot.
// It runs in O(1) and does NOT preserve order. There is no shifting removal.
//
// # Allocators
//
// The allocator is a type parameter constrained by alloc.Allocator, so the
// calls are resolved statically. Of[T] is the heap-backed form; NewWith
// accepts any allocator, for example a shared alloc.Pool or alloc.OffHeap.
//
// # Copy and Move
//
// Go assignment of a *Vector shares it. The value operations are explicit:
//
//   - Clone: new block of the same capacity, elements copied
//   - Move: block and elements transferred, source left released
//   - CopyFrom / MoveFrom: assignment into an existing vector, reusing its
//     block when it is large enough
//
// Elements are copied by plain assignment unless the element type implements
// Cloner. Destroyed elements get Release called when the element type
// implements Releaser, and their slot is zeroed so the garbage collector can
// reclaim what they referenced.
//
// # Checked and Unchecked Access
//
// At, AtRef, Get, Set, Front, Back and Remove check the index against Len().
// Index and Ref only rely on the runtime's slice bounds check against the
// block, which lets an index in [Len(), Cap()) through.
//
// # Contract Violations
//
// Push on a full vector, checked access out of range and structural
// modification during a range loop panic with an error value; use errors.Is
// with ErrFull, ErrOutOfRange or ErrInvalidated after recover. Construction
// and copying return errors instead (ErrZeroCapacity, ErrAllocation).
//
// # Concurrency
//
// A Vector has no internal synchronization. Callers must serialize all
// access, reads included, when a vector is shared between goroutines.
package fixedvec
