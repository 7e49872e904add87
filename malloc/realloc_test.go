package malloc

import "testing"

import "github.com/bnclabs/gomalloc/api"

func TestReallocreuse(t *testing.T) {
	heap := testheap("reallocreuse")
	p := heap.Alloc(100)
	freeblocks, freebytes := heap.Freeblocks(), heap.Freebytes()

	if q := heap.Realloc(p, 100); q != p {
		t.Errorf("expected %v, got %v", p, q)
	} else if x := heap.Freeblocks(); x != freeblocks {
		t.Errorf("expected %v, got %v", freeblocks, x)
	} else if x = heap.Freebytes(); x != freebytes {
		t.Errorf("expected %v, got %v", freebytes, x)
	}
	if q := heap.Realloc(p, 50); q != p { // shrink in place
		t.Errorf("expected %v, got %v", p, q)
	}
	if q := heap.Realloc(p, heap.Chunklen(p)); q != p { // refill in place
		t.Errorf("expected %v, got %v", p, q)
	}
	heap.Validate()
}

func TestReallocgrow(t *testing.T) {
	heap := testheap("reallocgrow")
	p := heap.Alloc(100)
	for i, sl := 0, byteslice(uintptr(p), 100); i < len(sl); i++ {
		sl[i] = 0x5a
	}
	freeblocks := heap.Freeblocks()

	// the whole upward buddy chain is free on a fresh arena, the
	// grow is in place and consumes three neighbours.
	q := heap.Realloc(p, 1000)
	if q != p {
		t.Errorf("expected %v, got %v", p, q)
	} else if x := heap.Freeblocks(); x != freeblocks-3 {
		t.Errorf("expected %v, got %v", freeblocks-3, x)
	}
	for i, sl := 0, byteslice(uintptr(q), 100); i < len(sl); i++ {
		if sl[i] != 0x5a {
			t.Fatalf("payload lost at byte %v", i)
		}
	}
	heap.Validate()
}

func TestReallocrelocate(t *testing.T) {
	heap := testheap("reallocrelocate")
	hs := heap.Metasize()
	p1 := heap.Alloc(100)
	p2 := heap.Alloc(100)
	for i, sl := 0, byteslice(uintptr(p2), 100); i < len(sl); i++ {
		sl[i] = 0xc3
	}
	heap.Free(p1)
	freeblocks := heap.Freeblocks()

	// p2 is the higher buddy, growing it relocates the payload into
	// the lower, freed, neighbour.
	q := heap.Realloc(p2, 300)
	if uintptr(q) != heap.base+uintptr(hs) {
		t.Errorf("expected %x, got %x", heap.base+uintptr(hs), uintptr(q))
	} else if x := heap.Freeblocks(); x != freeblocks-1 {
		t.Errorf("expected %v, got %v", freeblocks-1, x)
	}
	for i, sl := 0, byteslice(uintptr(q), 100); i < len(sl); i++ {
		if sl[i] != 0xc3 {
			t.Fatalf("payload lost at byte %v", i)
		}
	}
	heap.Validate()
}

func TestReallocfallback(t *testing.T) {
	heap := testheap("reallocfallback")
	hs := heap.Metasize()
	p1 := heap.Alloc(100)
	p2 := heap.Alloc(100)
	for i, sl := 0, byteslice(uintptr(p1), 100); i < len(sl); i++ {
		sl[i] = 0x77
	}
	freeblocks := heap.Freeblocks()

	// p1's buddy is p2 and in use, the grow is infeasible and the
	// request falls back to allocate-copy-free.
	q := heap.Realloc(p1, 300)
	if q == nil {
		t.Fatalf("unexpected realloc failure")
	} else if q == p1 {
		t.Errorf("expected relocation away from %v", p1)
	} else if uintptr(q) != heap.base+uintptr(4*Minblocksize+hs) {
		t.Errorf("expected %x, got %x",
			heap.base+uintptr(4*Minblocksize+hs), uintptr(q))
	}
	for i, sl := 0, byteslice(uintptr(q), 100); i < len(sl); i++ {
		if sl[i] != 0x77 {
			t.Fatalf("payload lost at byte %v", i)
		}
	}
	if x := heap.Freeblocks(); x != freeblocks {
		t.Errorf("expected %v, got %v", freeblocks, x)
	}
	heap.Validate()
	heap.Free(q)
	heap.Free(p2)
	heap.Validate()
}

func TestReallocfailure(t *testing.T) {
	heap := testheap("reallocfail")
	p := heap.Alloc(100)
	for i, sl := 0, byteslice(uintptr(p), 100); i < len(sl); i++ {
		sl[i] = 0x11
	}
	allocblocks := heap.Allocblocks()

	if q := heap.Realloc(p, 0); q != nil {
		t.Errorf("expected nil for zero size")
	}
	if q := heap.Realloc(p, api.Maxrequestsize+1); q != nil {
		t.Errorf("expected nil for oversized request")
	}
	// the old chunk survives a failed realloc.
	if x := heap.Allocblocks(); x != allocblocks {
		t.Errorf("expected %v, got %v", allocblocks, x)
	}
	for i, sl := 0, byteslice(uintptr(p), 100); i < len(sl); i++ {
		if sl[i] != 0x11 {
			t.Fatalf("payload lost at byte %v", i)
		}
	}
	heap.Free(p)
	heap.Validate()

	if q := heap.Realloc(nil, 100); q == nil { // degenerates to Alloc
		t.Errorf("unexpected realloc failure")
	}
	heap.Validate()
}

func TestReallocmapped(t *testing.T) {
	heap := testheap("reallocmapped")
	p := heap.Alloc(200000)
	for i, sl := 0, byteslice(uintptr(p), 64); i < len(sl); i++ {
		sl[i] = 0xe1
	}

	if q := heap.Realloc(p, 200000); q != p { // exact size is a no-op
		t.Errorf("expected %v, got %v", p, q)
	}

	q := heap.Realloc(p, 300000) // move to a bigger mapping
	if q == nil {
		t.Fatalf("unexpected realloc failure")
	} else if q == p {
		t.Errorf("expected relocation away from %v", p)
	} else if x := heap.Allocblocks(); x != Arenablocks+1 {
		t.Errorf("expected %v, got %v", Arenablocks+1, x)
	}
	for i, sl := 0, byteslice(uintptr(q), 64); i < len(sl); i++ {
		if sl[i] != 0xe1 {
			t.Fatalf("payload lost at byte %v", i)
		}
	}
	heap.Validate()

	r := heap.Realloc(q, 100) // shrink back into the buddy arena
	if r == nil {
		t.Fatalf("unexpected realloc failure")
	}
	for i, sl := 0, byteslice(uintptr(r), 64); i < len(sl); i++ {
		if sl[i] != 0xe1 {
			t.Fatalf("payload lost at byte %v", i)
		}
	}
	heap.Validate()
	heap.Free(r)
	if x := heap.Freeblocks(); x != Arenablocks {
		t.Errorf("expected %v, got %v", Arenablocks, x)
	}
	heap.Validate()
}

func TestReallocmaxorder(t *testing.T) {
	heap := testheap("reallocmax")
	hs := heap.Metasize()
	p := heap.Alloc(Maxblocksize - hs - 1) // an order-10 block
	q := heap.Realloc(p, Maxblocksize)     // cannot grow, goes mapped
	if q == nil {
		t.Fatalf("unexpected realloc failure")
	} else if x := heap.Freeblocks(); x != Arenablocks {
		t.Errorf("expected %v, got %v", Arenablocks, x)
	} else if x = heap.Allocblocks(); x != Arenablocks+1 {
		t.Errorf("expected %v, got %v", Arenablocks+1, x)
	}
	heap.Validate()
	heap.Free(q)
	heap.Validate()
}
