package malloc

import "unsafe"

import "github.com/bnclabs/gomalloc/api"

// Alloc implement api.Mallocer{} interface. Returns nil when the
// request is invalid or memory is exhausted.
func (heap *Heap) Alloc(n int64) unsafe.Pointer {
	if n <= 0 || n > api.Maxrequestsize {
		return nil
	}
	if err := heap.boot(); err != nil {
		errorf("%v boot(): %v\n", heap.logprefix, err)
		return nil
	}
	heap.h_reqsizes.Add(n)

	gross := n + headersize
	if gross >= Maxblocksize {
		return heap.mapchunk(n)
	}
	for k := orderof(gross); k <= Maxorder; k++ {
		if heap.frees[k] == 0 {
			continue
		}
		hd := heap.checkcookie(hdrat(heap.frees[k]))
		heap.unlink(&heap.frees[k], hd)
		heap.split(hd, gross, k)
		hd.clearfree()
		hd.reqsize = uint64(n)
		heap.linkhead(&heap.inuse, hd)
		return unsafe.Pointer(hd.addr)
	}
	return nil
}

// mapchunk service a request too big for the buddy orders with an
// anonymous kernel mapping.
func (heap *Heap) mapchunk(n int64) unsafe.Pointer {
	gross := n + headersize
	base, err := heap.sysmem.Mmap(gross)
	if err != nil {
		errorf("%v mmap %v bytes: %v\n", heap.logprefix, gross, err)
		return nil
	}
	hd := heap.carve(base, uint64(gross))
	hd.setmapped()
	hd.reqsize = uint64(n)
	heap.linkhead(&heap.mapped, hd)
	debugf("%v mapped %v bytes at %x\n", heap.logprefix, gross, base)
	return unsafe.Pointer(hd.addr)
}

// Zalloc implement api.Mallocer{} interface. Allocates num*size
// bytes and zeroes the payload.
func (heap *Heap) Zalloc(num, size int64) unsafe.Pointer {
	if num <= 0 || size <= 0 || num > api.Maxrequestsize/size {
		return nil
	}
	ptr := heap.Alloc(num * size)
	if ptr == nil {
		return nil
	}
	zeroblock(uintptr(ptr), num*size)
	return ptr
}

// Free implement api.Mallocer{} interface. Free(nil) and freeing an
// already free block are no-ops.
func (heap *Heap) Free(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}
	if err := heap.boot(); err != nil {
		errorf("%v boot(): %v\n", heap.logprefix, err)
		return
	}
	hd := heap.headerof(ptr)
	if hd.isfree() {
		return
	}
	if hd.ismapped() {
		base, size := hd.base(), int64(hd.size)
		heap.unlink(&heap.mapped, hd)
		if err := heap.sysmem.Munmap(base, size); err != nil {
			errorf("%v munmap %x: %v\n", heap.logprefix, base, err)
		}
		return
	}
	hd.setfree()
	hd.reqsize = 0
	heap.unlink(&heap.inuse, hd)
	poisonblock(hd.addr, int64(hd.size)-headersize)
	heap.merge(hd, hd.order())
}

// Realloc implement api.Mallocer{} interface. Resize the chunk
// preserving its payload, trying in order: in-place reuse, in-place
// growth over free buddies, allocate-copy-free. The old chunk is
// never released when Realloc fails.
func (heap *Heap) Realloc(ptr unsafe.Pointer, n int64) unsafe.Pointer {
	if n <= 0 || n > api.Maxrequestsize {
		return nil
	}
	if ptr == nil {
		return heap.Alloc(n)
	}
	if err := heap.boot(); err != nil {
		errorf("%v boot(): %v\n", heap.logprefix, err)
		return nil
	}
	hd := heap.headerof(ptr)

	if hd.ismapped() {
		if int64(hd.reqsize) == n {
			return ptr
		}
		newptr := heap.Alloc(n)
		if newptr == nil {
			return nil
		}
		count := int64(hd.reqsize)
		if n < count {
			count = n
		}
		memmove(uintptr(newptr), uintptr(ptr), count)
		heap.Free(ptr)
		return newptr
	}

	if n+headersize <= int64(hd.size) {
		hd.reqsize = uint64(n)
		return ptr
	}
	if newptr := heap.grow(hd, n); newptr != nil {
		return newptr
	}
	newptr := heap.Alloc(n)
	if newptr == nil {
		return nil
	}
	memmove(uintptr(newptr), uintptr(ptr), int64(hd.reqsize))
	heap.Free(ptr)
	return newptr
}
