package malloc

import humanize "github.com/dustin/go-humanize"

// The six introspection counters are pure walks over the three
// lists. Byte counts report the usable portion of each block, gross
// size minus the header.

// Freeblocks implement api.Mallocer{} interface.
func (heap *Heap) Freeblocks() int64 {
	if err := heap.boot(); err != nil {
		return 0
	}
	count := int64(0)
	for k := 0; k <= Maxorder; k++ {
		heap.walklist(heap.frees[k], func(hd *header) { count++ })
	}
	return count
}

// Freebytes implement api.Mallocer{} interface.
func (heap *Heap) Freebytes() int64 {
	if err := heap.boot(); err != nil {
		return 0
	}
	count := int64(0)
	for k := 0; k <= Maxorder; k++ {
		heap.walklist(heap.frees[k], func(hd *header) {
			count += int64(hd.size) - headersize
		})
	}
	return count
}

// Allocblocks implement api.Mallocer{} interface. Counts every block
// managed by the heap, free and in-use, buddy and mapped.
func (heap *Heap) Allocblocks() int64 {
	if err := heap.boot(); err != nil {
		return 0
	}
	count := int64(0)
	tally := func(hd *header) { count++ }
	for k := 0; k <= Maxorder; k++ {
		heap.walklist(heap.frees[k], tally)
	}
	heap.walklist(heap.inuse, tally)
	heap.walklist(heap.mapped, tally)
	return count
}

// Allocbytes implement api.Mallocer{} interface.
func (heap *Heap) Allocbytes() int64 {
	if err := heap.boot(); err != nil {
		return 0
	}
	count := int64(0)
	tally := func(hd *header) { count += int64(hd.size) - headersize }
	for k := 0; k <= Maxorder; k++ {
		heap.walklist(heap.frees[k], tally)
	}
	heap.walklist(heap.inuse, tally)
	heap.walklist(heap.mapped, tally)
	return count
}

// Metabytes implement api.Mallocer{} interface.
func (heap *Heap) Metabytes() int64 {
	return heap.Allocblocks() * headersize
}

// Metasize implement api.Mallocer{} interface.
func (heap *Heap) Metasize() int64 {
	return headersize
}

// Stats return a map of heap statistics, may be expensive to
// gather.
func (heap *Heap) Stats() map[string]interface{} {
	return map[string]interface{}{
		"free.blocks":  heap.Freeblocks(),
		"free.bytes":   heap.Freebytes(),
		"alloc.blocks": heap.Allocblocks(),
		"alloc.bytes":  heap.Allocbytes(),
		"meta.bytes":   heap.Metabytes(),
		"meta.size":    heap.Metasize(),
		"reqsizes":     heap.h_reqsizes.Fullstats(),
	}
}

// Log heap statistics.
func (heap *Heap) Log() {
	stats := heap.Stats()
	freeb := humanize.Bytes(uint64(stats["free.bytes"].(int64)))
	allocb := humanize.Bytes(uint64(stats["alloc.bytes"].(int64)))
	metab := humanize.Bytes(uint64(stats["meta.bytes"].(int64)))
	infof("%v free %v in %v blocks, footprint %v, metadata %v\n",
		heap.logprefix, freeb, stats["free.blocks"], allocb, metab)
	infof("%v reqsizes %v\n", heap.logprefix, heap.h_reqsizes.Logstring())
}
