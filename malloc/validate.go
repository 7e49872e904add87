package malloc

// Validate implement api.Mallocer{} interface. Walks every list and
// panics on a broken invariant:
//
//   - blocks on frees[k] carry the order's exact granule, the free
//     flag and strictly ascending addresses.
//   - no two free buddies of equal order below Maxorder coexist.
//   - in-use buddy blocks hold their requested payload.
//   - buddy blocks, free and in-use, tile the arena exactly.
func (heap *Heap) Validate() {
	if err := heap.boot(); err != nil {
		panicerr("boot(): %v", err)
	}
	arenabytes := int64(0)
	for k := 0; k <= Maxorder; k++ {
		size := uint64(Minblocksize) << uint(k)
		last := uintptr(0)
		for off := heap.frees[k]; off != 0; off = hdrat(off).next {
			hd := heap.checkcookie(hdrat(off))
			if hd.size != size {
				fmsg := "frees[%v] block at %x has size %v"
				panicerr(fmsg, k, hd.base(), hd.size)
			} else if hd.isfree() == false {
				panicerr("frees[%v] block at %x not free", k, hd.base())
			} else if hd.reqsize != 0 {
				panicerr("free block at %x has reqsize %v", hd.base(), hd.reqsize)
			} else if last != 0 && hd.base() <= last {
				panicerr("frees[%v] address order broken at %x", k, hd.base())
			}
			if k < Maxorder {
				buddy := hdrat(hd.base() ^ uintptr(hd.size))
				if buddy.cookie == heap.cookie && buddy.isfree() &&
					buddy.size == hd.size {
					fmsg := "unmerged buddies at %x and %x"
					panicerr(fmsg, hd.base(), buddy.base())
				}
			}
			last = hd.base()
			arenabytes += int64(hd.size)
		}
	}
	heap.walklist(heap.inuse, func(hd *header) {
		if hd.isfree() || hd.ismapped() {
			panicerr("in-use list block at %x flags %x", hd.base(), hd.flags)
		} else if int64(hd.reqsize)+headersize > int64(hd.size) {
			fmsg := "block at %x reqsize %v overflows size %v"
			panicerr(fmsg, hd.base(), hd.reqsize, hd.size)
		}
		arenabytes += int64(hd.size)
	})
	heap.walklist(heap.mapped, func(hd *header) {
		if hd.ismapped() == false || hd.isfree() {
			panicerr("mapped list block at %x flags %x", hd.base(), hd.flags)
		} else if int64(hd.reqsize)+headersize != int64(hd.size) {
			fmsg := "mapped block at %x reqsize %v size %v"
			panicerr(fmsg, hd.base(), hd.reqsize, hd.size)
		}
	})
	if arenabytes != Arenasize {
		fmsg := "buddy blocks cover %v bytes, arena is %v"
		panicerr(fmsg, arenabytes, Arenasize)
	}
}
