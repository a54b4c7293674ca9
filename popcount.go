package bitkit

import "math/big"

// PopCount returns the number of set bits. It walks every bit of the byte
// serialization, so the cost is proportional to the bitmap's bit-length and
// independent of density.
//
// Benchmarks (see BenchmarkPopCount) show this variant beating
// PopCountSparse at practical densities, hardware popcount aside; the byte
// walk is cache-friendly while Kernighan's loop reallocates big integers per
// set bit.
func (b Bitmap) PopCount() int {
	n := 0
	for _, c := range b.bits().Bytes() {
		for i := 0; i < 8; i++ {
			n += int(c >> i & 1)
		}
	}
	return n
}

// PopCountSparse returns the number of set bits using Kernighan's algorithm:
// v &= v-1 clears the lowest set bit, so the loop runs once per member. The
// cost is proportional to the population, which only pays off when the
// bitmap is very sparse relative to its bit-length.
//
// PopCount and PopCountSparse always agree; both are exported because the
// crossover is workload-dependent and worth measuring in place.
func (b Bitmap) PopCountSparse() int {
	w := new(big.Int).Set(b.bits())
	t := new(big.Int)
	n := 0
	for w.Sign() > 0 {
		t.Sub(w, bigOne)
		w.And(w, t)
		n++
	}
	return n
}
