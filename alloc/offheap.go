package alloc

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/artem-zyktin/fixed-vector/internal/buf"
	"github.com/artem-zyktin/fixed-vector/internal/mmap"
)

// OffHeap places blocks in anonymous memory mappings outside the Go heap.
// The zero value is ready to use.
//
// The garbage collector never scans mapped memory, so element types holding
// pointers (including strings, slices, maps and interfaces) are rejected
// with ErrPointerType. Where mmap is unavailable blocks come from the Go heap.
type OffHeap[T any] struct{}

// Allocate maps a zero-filled region sized for count slots.
func (OffHeap[T]) Allocate(count int) ([]T, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}

	typ := reflect.TypeFor[T]()
	if hasPointers(typ) {
		return nil, fmt.Errorf("%w: %s", ErrPointerType, typ)
	}

	elemSize := int(typ.Size())
	if elemSize == 0 {
		return make([]T, count), nil
	}

	size, err := buf.BlockBytes(count, elemSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCount, err)
	}

	region, err := mmap.Anonymous(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(region))), count), nil
}

// Deallocate unmaps the region behind block. Blocks that are not live
// mappings from Allocate, including ones already released, are rejected with
// ErrUnknownBlock.
func (OffHeap[T]) Deallocate(block []T) error {
	if block == nil {
		return ErrUnknownBlock
	}

	elemSize := int(unsafe.Sizeof(*new(T)))
	if elemSize == 0 || len(block) == 0 {
		return nil
	}
	if !mmap.Supported {
		clear(block)
		return nil
	}

	region := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(block))), len(block)*elemSize)
	if !mmap.Mapped(region) {
		return fmt.Errorf("%w: not a live mapping", ErrUnknownBlock)
	}
	if err := mmap.Unmap(region); err != nil {
		return fmt.Errorf("alloc: release mapping: %w", err)
	}
	return nil
}

// hasPointers reports whether values of t can reference Go heap memory.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
