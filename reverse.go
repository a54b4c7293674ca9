package bitkit

import "math/big"

// Reverse returns a bitmap whose bit i equals the receiver's bit
// (BitLen()-1-i). The mirror width is the minimal bit-length, so the highest
// set bit always maps to bit 0 and vice versa; bits above BitLen() are zero
// on both sides. Reversing twice round-trips only when bit 0 of the input is
// set, since the first reversal forgets trailing zeros.
func (b Bitmap) Reverse() Bitmap {
	v := b.bits()
	n := v.BitLen()
	out := new(big.Int)
	for i := 0; i < n; i++ {
		if v.Bit(i) == 1 {
			out.SetBit(out, n-1-i, 1)
		}
	}
	return Bitmap{value: out}
}
