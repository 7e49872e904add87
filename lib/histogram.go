package lib

import "fmt"
import "math"
import "sort"
import "strconv"
import "strings"

// HistogramInt64 statistical histogram over power-of-two buckets,
// suited for size distributions where samples spread across several
// orders of magnitude. Samples below the lowest boundary or at and
// above the highest land in the boundary buckets.
type HistogramInt64 struct {
	// stats
	n      int64
	minval int64
	maxval int64
	sum    int64
	sumsq  float64
	counts []int64
	// setup
	from int64 // lowest bucket boundary, a power of two
}

// NewhistorgramInt64 return a new histogram object with one bucket
// per doubling between `from` and `till`, both rounded up to powers
// of two.
func NewhistorgramInt64(from, till int64) *HistogramInt64 {
	from, till = ceilpow2(from), ceilpow2(till)
	if till <= from {
		panic(fmt.Errorf("histogram range [%v,%v)", from, till))
	}
	nbuckets := 2 // below `from` and at or above `till`
	for boundary := from; boundary < till; boundary <<= 1 {
		nbuckets++
	}
	return &HistogramInt64{from: from, counts: make([]int64, nbuckets)}
}

// Add a sample to this histogram.
func (h *HistogramInt64) Add(sample int64) {
	h.n++
	h.sum += sample
	f := float64(sample)
	h.sumsq += f * f
	if h.n == 1 || sample < h.minval {
		h.minval = sample
	}
	if h.n == 1 || sample > h.maxval {
		h.maxval = sample
	}
	bucket, boundary := 0, h.from
	for sample >= boundary && bucket < len(h.counts)-1 {
		bucket++
		boundary <<= 1
	}
	h.counts[bucket]++
}

// Min return minimum value from sample.
func (h *HistogramInt64) Min() int64 {
	return h.minval
}

// Max return maximum value from sample.
func (h *HistogramInt64) Max() int64 {
	return h.maxval
}

// Samples return total number of samples in the set.
func (h *HistogramInt64) Samples() int64 {
	return h.n
}

// Sum return the sum of all sample values.
func (h *HistogramInt64) Sum() int64 {
	return h.sum
}

// Mean return the average value of all samples.
func (h *HistogramInt64) Mean() int64 {
	if h.n == 0 {
		return 0
	}
	return h.sum / h.n
}

// Variance return the squared deviation of a random sample from
// its mean.
func (h *HistogramInt64) Variance() int64 {
	if h.n == 0 {
		return 0
	}
	mean := float64(h.sum) / float64(h.n)
	return int64(h.sumsq/float64(h.n) - mean*mean)
}

// SD return by how much the samples differ from the mean value of
// sample set.
func (h *HistogramInt64) SD() int64 {
	return int64(math.Sqrt(float64(h.Variance())))
}

// Fullstats return a map of histogram buckets along with mean,
// variance and stddeviance. Bucket keys are the lower boundary of
// each doubling, "-" and "+" hold the out-of-range tails.
func (h *HistogramInt64) Fullstats() map[string]interface{} {
	buckets := make(map[string]int64)
	for i, count := range h.counts {
		if count == 0 {
			continue
		}
		switch i {
		case 0:
			buckets["-"] = count
		case len(h.counts) - 1:
			buckets["+"] = count
		default:
			key := strconv.Itoa(int(h.from << uint(i-1)))
			buckets[key] = count
		}
	}
	return map[string]interface{}{
		"samples":     h.Samples(),
		"min":         h.Min(),
		"max":         h.Max(),
		"mean":        h.Mean(),
		"variance":    h.Variance(),
		"stddeviance": h.SD(),
		"histogram":   buckets,
	}
}

// Logstring return Fullstats as loggable string.
func (h *HistogramInt64) Logstring() string {
	stats := h.Fullstats()
	keys := []string{"samples", "min", "max", "mean", "variance", "stddeviance"}
	ss := []string{}
	for _, key := range keys {
		ss = append(ss, fmt.Sprintf(`"%v": %v`, key, stats[key]))
	}
	buckets := stats["histogram"].(map[string]int64)
	hkeys := []string{}
	for k := range buckets {
		hkeys = append(hkeys, k)
	}
	sort.Strings(hkeys)
	hs := []string{}
	for _, k := range hkeys {
		hs = append(hs, fmt.Sprintf(`"%v": %v`, k, buckets[k]))
	}
	ss = append(ss, `"histogram": {`+strings.Join(hs, ",")+`}`)
	return "{" + strings.Join(ss, ",") + "}"
}

func ceilpow2(v int64) int64 {
	if v < 1 {
		v = 1
	}
	boundary := int64(1)
	for boundary < v {
		boundary <<= 1
	}
	return boundary
}
