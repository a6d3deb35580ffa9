package alloc

import "errors"

var (
	// ErrInvalidCount indicates a non-positive slot count, or one whose byte size overflows.
	ErrInvalidCount = errors.New("alloc: invalid slot count")

	// ErrOutOfMemory indicates that the platform could not provide the requested block.
	ErrOutOfMemory = errors.New("alloc: out of memory")

	// ErrPointerType indicates an element type that cannot live outside the Go heap.
	ErrPointerType = errors.New("alloc: element type contains pointers")

	// ErrUnknownBlock indicates a release of a block this allocator does not own.
	ErrUnknownBlock = errors.New("alloc: block not owned by allocator")
)
