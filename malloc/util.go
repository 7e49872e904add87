package malloc

import "fmt"
import "reflect"
import "unsafe"

import sigar "github.com/cloudfoundry/gosigar"

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}

// orderof smallest order whose granule holds `gross` bytes.
func orderof(gross int64) int {
	k := 0
	for size := Minblocksize; size < gross; size <<= 1 {
		k++
	}
	return k
}

func byteslice(at uintptr, n int64) (sl []byte) {
	hdr := (*reflect.SliceHeader)(unsafe.Pointer(&sl))
	hdr.Data, hdr.Len, hdr.Cap = at, int(n), int(n)
	return
}

// memmove copy n bytes between possibly overlapping regions.
func memmove(dst, src uintptr, n int64) {
	if n > 0 {
		copy(byteslice(dst, n), byteslice(src, n))
	}
}

func zeroblock(at uintptr, n int64) {
	sl := byteslice(at, n)
	for i := range sl {
		sl[i] = 0
	}
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}
