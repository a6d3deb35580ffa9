// Package mmap provides anonymous memory mappings for off-heap blocks.
//
// On Linux and the BSDs the mappings come from mmap(2) via golang.org/x/sys/unix and are
// invisible to the garbage collector. Elsewhere the package falls back to
// the Go heap so callers keep a single code path.
package mmap
