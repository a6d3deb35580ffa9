package alloc

// Allocator is the capability a fixed-capacity container needs from its
// storage provider: hand out a block of slots, take it back.
//
// Implementations:
//   - Heap: pass-through to the Go heap
//   - Pool: size-class free lists that recycle released blocks
//   - Tracked: statistics wrapper around any Allocator
//   - OffHeap: anonymous mmap regions for pointer-free element types
//
// The contract is checked structurally; any type with these two methods
// can back a container.
type Allocator[T any] interface {
	// Allocate returns a block of exactly count zeroed slots.
	// It never returns a block shorter than count; failure is reported as an error.
	Allocate(count int) ([]T, error)

	// Deallocate releases a block previously returned by Allocate on the same allocator.
	// The block must be non-nil and keep the length Allocate gave it.
	Deallocate(block []T) error
}
