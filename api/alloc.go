package api

import "unsafe"

// Mallocer interface for custom memory management.
type Mallocer interface {
	// Alloc allocate a chunk of `n` bytes from the heap. Returns nil
	// if `n` is invalid or memory is exhausted.
	Alloc(n int64) unsafe.Pointer

	// Zalloc allocate a chunk of num*size bytes, with every byte set
	// to zero.
	Zalloc(num, size int64) unsafe.Pointer

	// Realloc resize chunk to `n` bytes preserving its payload. The
	// old chunk is never released when Realloc fails.
	Realloc(ptr unsafe.Pointer, n int64) unsafe.Pointer

	// Free chunk back to the heap. Free(nil) and double Free are
	// no-ops.
	Free(ptr unsafe.Pointer)

	// Chunklen return the length of the chunk usable by application.
	Chunklen(ptr unsafe.Pointer) int64

	// Freeblocks return the number of chunks available for allocation.
	Freeblocks() int64

	// Freebytes return the usable bytes available for allocation.
	Freebytes() int64

	// Allocblocks return the total number of chunks managed by the
	// heap, both free and in-use.
	Allocblocks() int64

	// Allocbytes return the total usable bytes managed by the heap.
	Allocbytes() int64

	// Metabytes return the total bytes consumed by chunk metadata.
	Metabytes() int64

	// Metasize return the size of per-chunk metadata.
	Metasize() int64

	// Validate heap invariants, panic on violation.
	Validate()
}
