package malloc

import "unsafe"

import s "github.com/bnclabs/gosettings"

import "github.com/bnclabs/gomalloc/api"

// Sysmem kernel surface used by the heap, a grow-only program break
// for the arena and anonymous page mappings for big chunks. Failures
// are reported as errors and surface to callers as nil allocations.
type Sysmem interface {
	// Sbrk extend the program break by incr bytes and return the
	// previous break. incr zero reads the current break.
	Sbrk(incr int64) (uintptr, error)

	// Mmap reserve an anonymous mapping of n bytes.
	Mmap(n int64) (uintptr, error)

	// Munmap release a mapping obtained through Mmap.
	Munmap(base uintptr, n int64) error
}

func newsysmem(setts s.Settings) Sysmem {
	switch backend := setts.String("sysmem"); backend {
	case "sim":
		return newsimmem(setts.Int64("sim.capacity"))
	case "brk":
		return brksysmem()
	case "auto":
		return defaultsysmem()
	default:
		panicerr("invalid sysmem backend %q", backend)
	}
	return nil
}

// simmem services Sbrk from a region reserved up front on the Go
// heap, and mappings as tracked slices. Used by tests and on
// platforms without a usable program break.
type simmem struct {
	space []byte
	brk   uintptr
	end   uintptr
	maps  map[uintptr][]byte
}

func newsimmem(capacity int64) *simmem {
	if capacity < 2*Arenasize {
		panicerr("sim capacity %v cannot fit an aligned arena", capacity)
	}
	m := &simmem{
		space: make([]byte, capacity),
		maps:  make(map[uintptr][]byte),
	}
	m.brk = uintptr(unsafe.Pointer(&m.space[0]))
	m.end = m.brk + uintptr(capacity)
	return m
}

func (m *simmem) Sbrk(incr int64) (uintptr, error) {
	if incr < 0 {
		panicerr("break cannot shrink by %v", incr)
	}
	if m.brk+uintptr(incr) > m.end {
		return 0, api.ErrorOutofMemory
	}
	old := m.brk
	m.brk += uintptr(incr)
	return old, nil
}

func (m *simmem) Mmap(n int64) (uintptr, error) {
	if n <= 0 {
		panicerr("mmap of %v bytes", n)
	}
	region := make([]byte, n)
	base := uintptr(unsafe.Pointer(&region[0]))
	m.maps[base] = region
	return base, nil
}

func (m *simmem) Munmap(base uintptr, n int64) error {
	if _, ok := m.maps[base]; ok == false {
		return api.ErrorBadPointer
	}
	delete(m.maps, base)
	return nil
}
