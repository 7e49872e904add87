// +build linux

package malloc

import "unsafe"

import "golang.org/x/sys/unix"

import "github.com/bnclabs/gomalloc/api"

// brkmem extends the real program break for the arena. The Go
// runtime allocates through mmap and leaves the break alone, so the
// region above the break belongs to this heap. Big chunks come from
// anonymous mappings.
type brkmem struct {
	maps map[uintptr][]byte
}

func newbrkmem() *brkmem {
	return &brkmem{maps: make(map[uintptr][]byte)}
}

func (m *brkmem) Sbrk(incr int64) (uintptr, error) {
	cur, _, errno := unix.Syscall(unix.SYS_BRK, 0, 0, 0)
	if errno != 0 {
		return 0, errno
	}
	if incr == 0 {
		return cur, nil
	}
	next, _, errno := unix.Syscall(unix.SYS_BRK, cur+uintptr(incr), 0, 0)
	if errno != 0 {
		return 0, errno
	} else if next < cur+uintptr(incr) {
		return 0, api.ErrorOutofMemory
	}
	return cur, nil
}

func (m *brkmem) Mmap(n int64) (uintptr, error) {
	region, err := unix.Mmap(
		-1, 0, int(n),
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return 0, err
	}
	base := uintptr(unsafe.Pointer(&region[0]))
	m.maps[base] = region
	return base, nil
}

func (m *brkmem) Munmap(base uintptr, n int64) error {
	region, ok := m.maps[base]
	if ok == false {
		return api.ErrorBadPointer
	}
	delete(m.maps, base)
	return unix.Munmap(region)
}

func brksysmem() Sysmem {
	return newbrkmem()
}

func defaultsysmem() Sysmem {
	return newbrkmem()
}
