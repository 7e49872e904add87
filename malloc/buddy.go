package malloc

import "unsafe"

// The buddy relation: a block at `base` of size S has its buddy at
// `base XOR S`, always inside the arena because the arena is
// Arenasize aligned. Splitting halves a block and files the upper
// half, merging absorbs a free buddy into the lower-addressed
// header.

// split halve a detached victim of order k until the next halving
// would no longer hold `gross` bytes. The upper halves become free
// blocks at their own orders, the surviving lower half stays
// detached with the caller.
func (heap *Heap) split(hd *header, gross int64, k int) {
	for k > 0 && gross <= int64(hd.size)/2 {
		k--
		hd.size >>= 1
		buddy := heap.carve(hd.base()+uintptr(hd.size), hd.size)
		buddy.setfree()
		heap.linksorted(&heap.frees[k], buddy)
	}
}

// merge coalesce a newly freed block of order k with its buddy,
// walking orders upward while the buddy is free and of equal size.
// The lower-addressed header survives and doubles, the other header
// is abandoned to become payload space. Ends by filing the survivor
// at its final order.
func (heap *Heap) merge(hd *header, k int) {
	for k < Maxorder {
		buddy := heap.checkcookie(hdrat(hd.base() ^ uintptr(hd.size)))
		if buddy.isfree() == false || buddy.size != hd.size {
			break
		}
		heap.unlink(&heap.frees[k], buddy)
		if buddy.base() < hd.base() {
			hd = buddy
		}
		hd.size <<= 1
		k++
	}
	heap.linksorted(&heap.frees[k], hd)
}

// grow try to satisfy a realloc in place by swallowing the chain of
// upward buddies of an in-use block. The first pass only inspects
// the chain and fails without touching the heap when any link is
// in-use or size mismatched, the second pass performs the
// destructive merges. Payload bytes are preserved, relocated
// downward when a lower-addressed buddy ends up as the surviving
// header.
func (heap *Heap) grow(hd *header, n int64) unsafe.Pointer {
	gross := n + headersize

	base, size := hd.base(), hd.size
	for int64(size) < gross {
		if int64(size) >= Maxblocksize {
			return nil
		}
		buddy := heap.checkcookie(hdrat(base ^ uintptr(size)))
		if buddy.isfree() == false || buddy.size != size {
			return nil
		}
		if buddy.base() < base {
			base = buddy.base()
		}
		size <<= 1
	}

	oldaddr, oldreq := hd.addr, int64(hd.reqsize)
	heap.unlink(&heap.inuse, hd)
	for k := hd.order(); int64(hd.size) < gross; k++ {
		buddy := hdrat(hd.base() ^ uintptr(hd.size))
		heap.unlink(&heap.frees[k], buddy)
		if buddy.base() < hd.base() {
			hd = buddy
		}
		hd.size <<= 1
	}
	hd.clearfree()
	if hd.addr != oldaddr {
		memmove(hd.addr, oldaddr, oldreq)
	}
	hd.reqsize = uint64(n)
	heap.linkhead(&heap.inuse, hd)
	debugf("%v grew block to %v bytes at %x\n",
		heap.logprefix, hd.size, hd.base())
	return unsafe.Pointer(hd.addr)
}
