// Package alloc provides block allocators for fixed-capacity containers.
//
// # Overview
//
// A container asks its allocator for one block of slots when it is built and
// gives the block back when it is closed or reallocated. Nothing in between
// touches the allocator, so the strategy behind it only shapes construction
// and assignment cost.
//
// # Allocator Interface
//
// The core abstraction is the generic Allocator interface:
//
//   - Allocate(count): a block of exactly count zeroed slots
//   - Deallocate(block): return a block obtained from Allocate
//
// # Implementations
//
// Heap: the default, a thin wrapper over make.
//
// Pool: segregated free lists keyed by size class.
//
//   - Linear classes for small counts, geometric classes above
//   - Released blocks are handed back on the next Allocate of the same class
//   - Retention per class is bounded by MaxFreePerClass
//
// Tracked: wraps another allocator and counts allocations, releases, live
// blocks and live slots. Useful to observe block reuse.
//
// OffHeap: anonymous private memory mappings outside the Go heap. Only
// element types without pointers are accepted, because the garbage collector
// does not scan mapped memory.
//
// # Usage Example
//
//	p := alloc.NewPool[Order](alloc.DefaultConfig)
//	v, err := fixedvec.NewWith[Order](256, p)
//	if err != nil {
//	    return err
//	}
//	defer v.Close()
//
// # Concurrency
//
// None of the allocators synchronize. An allocator shared by several
// containers must be used from one goroutine at a time.
package alloc
