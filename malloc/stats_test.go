package malloc

import "testing"

import "github.com/stretchr/testify/assert"

func TestCounters(t *testing.T) {
	heap := testheap("counters")
	hs := heap.Metasize()

	assert.Equal(t, Arenablocks, heap.Freeblocks(), "fresh free blocks")
	assert.Equal(t, Arenablocks*(Maxblocksize-hs), heap.Freebytes(),
		"fresh free bytes")
	assert.Equal(t, Arenablocks, heap.Allocblocks(), "fresh alloc blocks")
	assert.Equal(t, Arenablocks*(Maxblocksize-hs), heap.Allocbytes(),
		"fresh alloc bytes")
	assert.Equal(t, Arenablocks*hs, heap.Metabytes(), "fresh meta bytes")
	assert.Equal(t, headersize, heap.Metasize(), "meta size")

	p := heap.Alloc(100)
	assert.NotNil(t, p, "small allocation")
	k := int64(orderof(100 + hs))
	assert.Equal(t, Arenablocks-1+(Maxorder-k), heap.Freeblocks(),
		"free blocks after the splits")
	assert.Equal(t, Arenablocks+(Maxorder-k), heap.Allocblocks(),
		"alloc blocks after the splits")
	assert.Equal(t, heap.Allocblocks()*hs, heap.Metabytes(),
		"meta bytes track block count")

	q := heap.Alloc(200000)
	assert.NotNil(t, q, "mapped allocation")
	assert.Equal(t, Arenablocks-1+(Maxorder-k), heap.Freeblocks(),
		"mapped path leaves the free lists alone")
	assert.Equal(t, Arenablocks+(Maxorder-k)+1, heap.Allocblocks(),
		"mapped chunk counted in alloc blocks")

	heap.Free(p)
	heap.Free(q)
	assert.Equal(t, Arenablocks, heap.Freeblocks(), "free blocks restored")
	assert.Equal(t, Arenablocks*(Maxblocksize-hs), heap.Freebytes(),
		"free bytes restored")

	stats := heap.Stats()
	assert.Equal(t, heap.Freeblocks(), stats["free.blocks"], "stats map")
	assert.Equal(t, heap.Metasize(), stats["meta.size"], "stats map")
}
