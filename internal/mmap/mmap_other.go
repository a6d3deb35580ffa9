//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package mmap

import "fmt"

// Supported reports whether Anonymous maps memory outside the Go heap.
const Supported = false

// Anonymous allocates size zeroed bytes on the Go heap when mmap is not available.
func Anonymous(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mmap: invalid size %d", size)
	}
	return make([]byte, size), nil
}

// Mapped always reports false: without mmap nothing is mapped.
func Mapped(data []byte) bool {
	return false
}

// Unmap is a no-op without mmap.
func Unmap(data []byte) error {
	return nil
}
