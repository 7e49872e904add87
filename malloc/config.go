package malloc

import s "github.com/bnclabs/gosettings"

// Minblocksize granule of the smallest buddy order.
const Minblocksize = int64(128)

// Maxorder highest buddy order managed by the heap.
const Maxorder = 10

// Maxblocksize granule of the highest buddy order. Requests whose
// gross size, payload plus header, meets this limit are serviced by
// the mapped path.
const Maxblocksize = Minblocksize << Maxorder

// Arenablocks number of Maxblocksize blocks reserved at boot.
const Arenablocks = int64(32)

// Arenasize size, and alignment, of the program-break arena. The
// alignment keeps every block's buddy inside the arena.
const Arenasize = Arenablocks * Maxblocksize

// Simcapacity default break space reserved by the "sim" backend,
// leaves room for aligning the arena upward.
const Simcapacity = 3 * Arenasize

// Heap configurable parameters and default settings.
//
// "sysmem" (string, default: "auto")
//		Kernel backend. "brk" extends the program break, "sim"
//		simulates a break over a region reserved up front, "auto"
//		picks "brk" where supported.
//
// "sim.capacity" (int64, default: <Simcapacity>)
//		Break space reserved by the "sim" backend.
func Defaultsettings() s.Settings {
	return s.Settings{
		"sysmem":       "auto",
		"sim.capacity": Simcapacity,
	}
}
