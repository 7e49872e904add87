package malloc

import "fmt"
import "math/rand"
import "os"
import "unsafe"

import humanize "github.com/dustin/go-humanize"
import s "github.com/bnclabs/gosettings"

import "github.com/bnclabs/gomalloc/lib"

// exit hook for cookie violations, tests can intercept it.
var exit = os.Exit

// Heap is a buddy-system allocator over a private program-break
// arena. Blocks are power-of-two granules carved out of the arena,
// requests too big for the largest granule are routed to anonymous
// kernel mappings.
type Heap struct {
	cookie uint32
	base   uintptr               // arena base, aligned to Arenasize
	frees  [Maxorder + 1]uintptr // per-order free lists, address sorted
	inuse  uintptr               // in-use buddy blocks
	mapped uintptr               // in-use mapped chunks

	sysmem     Sysmem
	h_reqsizes *lib.HistogramInt64

	// settings
	setts     s.Settings
	logprefix string
}

// NewHeap create a new buddy heap. No memory is reserved from the
// kernel until the first operation on the heap.
func NewHeap(name string, setts s.Settings) *Heap {
	heap := &Heap{cookie: rand.Uint32()}
	heap.logprefix = fmt.Sprintf("MALLOC [%s]", name)

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	heap.sysmem = newsysmem(setts)
	heap.h_reqsizes = lib.NewhistorgramInt64(Minblocksize, Maxblocksize)
	heap.setts = setts
	return heap
}

// boot reserve and seed the arena, executed on the first operation.
// A kernel failure here is reported to the caller and boot is
// retried on the next operation.
func (heap *Heap) boot() error {
	if heap.base != 0 {
		return nil
	}
	cur, err := heap.sysmem.Sbrk(0)
	if err != nil {
		return err
	}
	aligned := (cur + uintptr(Arenasize) - 1) &^ uintptr(Arenasize-1)
	if pad := aligned - cur; pad > 0 {
		if _, err := heap.sysmem.Sbrk(int64(pad)); err != nil {
			return err
		}
	}
	base, err := heap.sysmem.Sbrk(Arenasize)
	if err != nil {
		return err
	}

	var last *header
	for i := int64(0); i < Arenablocks; i++ {
		hd := heap.carve(base+uintptr(i*Maxblocksize), uint64(Maxblocksize))
		hd.setfree()
		if last == nil {
			heap.frees[Maxorder] = hd.base()
		} else {
			last.next = hd.base()
			hd.prev = last.base()
		}
		last = hd
	}
	heap.base = base

	total, _, free := getsysmem()
	infof("%v booted %v arena at %x, sysmem %v/%v free\n",
		heap.logprefix, humanize.Bytes(uint64(Arenasize)), base,
		humanize.Bytes(free), humanize.Bytes(total))
	return nil
}

// carve a fresh header at `at`, linking and flags are left to the
// caller.
func (heap *Heap) carve(at uintptr, size uint64) *header {
	hd := hdrat(at)
	hd.cookie = heap.cookie
	hd.flags = 0
	hd.size = size
	hd.reqsize = 0
	hd.addr = at + uintptr(headersize)
	hd.next, hd.prev = 0, 0
	return hd
}

// checkcookie gate every header access, a mismatch means the
// application scribbled over metadata and the process cannot be
// trusted to continue.
func (heap *Heap) checkcookie(hd *header) *header {
	if hd != nil && hd.cookie != heap.cookie {
		fatalf("%v cookie mismatch at %x\n", heap.logprefix, hd.base())
		exit(0xDEADBEEF)
	}
	return hd
}

func (heap *Heap) headerof(ptr unsafe.Pointer) *header {
	return heap.checkcookie(hdrat(uintptr(ptr) - uintptr(headersize)))
}

// Chunklen implement api.Mallocer{} interface.
func (heap *Heap) Chunklen(ptr unsafe.Pointer) int64 {
	hd := heap.headerof(ptr)
	return int64(hd.size) - headersize
}
