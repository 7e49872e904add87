package malloc

import "unsafe"

// The default heap mirrors a C allocator's process-wide state. It is
// created with default settings on the first call to any of the
// package-level entry points, and lives for the rest of the process.
var defaultheap *Heap

func defaultHeap() *Heap {
	if defaultheap == nil {
		defaultheap = NewHeap("default", Defaultsettings())
	}
	return defaultheap
}

// Alloc allocate `n` bytes from the default heap.
func Alloc(n int64) unsafe.Pointer {
	return defaultHeap().Alloc(n)
}

// Zalloc allocate num*size zeroed bytes from the default heap.
func Zalloc(num, size int64) unsafe.Pointer {
	return defaultHeap().Zalloc(num, size)
}

// Realloc resize a chunk of the default heap.
func Realloc(ptr unsafe.Pointer, n int64) unsafe.Pointer {
	return defaultHeap().Realloc(ptr, n)
}

// Free release a chunk back to the default heap.
func Free(ptr unsafe.Pointer) {
	defaultHeap().Free(ptr)
}

// Freeblocks counter over the default heap.
func Freeblocks() int64 {
	return defaultHeap().Freeblocks()
}

// Freebytes counter over the default heap.
func Freebytes() int64 {
	return defaultHeap().Freebytes()
}

// Allocblocks counter over the default heap.
func Allocblocks() int64 {
	return defaultHeap().Allocblocks()
}

// Allocbytes counter over the default heap.
func Allocbytes() int64 {
	return defaultHeap().Allocbytes()
}

// Metabytes counter over the default heap.
func Metabytes() int64 {
	return defaultHeap().Metabytes()
}

// Metasize counter over the default heap.
func Metasize() int64 {
	return defaultHeap().Metasize()
}
