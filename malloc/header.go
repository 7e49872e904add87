package malloc

import "unsafe"

const (
	hdrFree   uint32 = 0x1
	hdrMapped uint32 = 0x2
)

// header is carved into raw memory right in front of every payload,
// fields are accessed by overlaying the struct on the block's base
// address. Links are held as raw addresses so that arena memory
// never stores Go pointers.
type header struct {
	cookie  uint32  // process cookie, guards against corruption
	flags   uint32  // hdrFree | hdrMapped
	size    uint64  // gross block size, including the header
	reqsize uint64  // payload bytes requested, zero while free
	addr    uintptr // payload address, base + headersize
	next    uintptr // *header
	prev    uintptr // *header
}

const headersize = int64(unsafe.Sizeof(header{}))

func hdrat(at uintptr) *header {
	return (*header)(unsafe.Pointer(at))
}

func (hd *header) base() uintptr {
	return uintptr(unsafe.Pointer(hd))
}

func (hd *header) isfree() bool {
	return hd.flags&hdrFree != 0
}

func (hd *header) setfree() *header {
	hd.flags |= hdrFree
	return hd
}

func (hd *header) clearfree() *header {
	hd.flags &^= hdrFree
	return hd
}

func (hd *header) ismapped() bool {
	return hd.flags&hdrMapped != 0
}

func (hd *header) setmapped() *header {
	hd.flags |= hdrMapped
	return hd
}

// order of the block's granule, meaningful only for buddy blocks.
func (hd *header) order() int {
	return orderof(int64(hd.size))
}
