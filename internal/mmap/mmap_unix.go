//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package mmap

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Supported reports whether Anonymous maps memory outside the Go heap.
const Supported = true

// live records the mappings made by Anonymous that are not yet unmapped,
// keyed by start address.
var (
	liveMu sync.Mutex
	live   = make(map[uintptr]int)
)

func key(data []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(data)))
}

// Anonymous maps size bytes of private, zero-filled, read/write memory.
func Anonymous(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mmap: invalid size %d", size)
	}
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap: %d bytes: %w", size, err)
	}

	liveMu.Lock()
	live[key(data)] = len(data)
	liveMu.Unlock()
	return data, nil
}

// Mapped reports whether data is exactly a live mapping returned by
// Anonymous.
func Mapped(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	liveMu.Lock()
	defer liveMu.Unlock()
	n, ok := live[key(data)]
	return ok && n == len(data)
}

// Unmap releases a mapping returned by Anonymous. The slice must cover the
// whole mapping. Unmapping a region that is no longer mapped is a no-op;
// use Mapped to tell a stale region from a foreign one beforehand.
func Unmap(data []byte) error {
	if len(data) == 0 {
		return nil
	}

	liveMu.Lock()
	defer liveMu.Unlock()
	k := key(data)
	if _, ok := live[k]; !ok {
		return nil
	}
	if err := unix.Munmap(data); err != nil {
		return fmt.Errorf("mmap: unmap %d bytes: %w", len(data), err)
	}
	delete(live, k)
	return nil
}
