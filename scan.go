package bitkit

import (
	"math/big"
	"math/bits"
)

var bigOne = big.NewInt(1)

// msbOfByte returns the position of the highest set bit in c, scanning from
// the top down, or 0 when c is zero. The zero result is the same documented
// ambiguity MSB and LSB carry: 0 means both "bit 0" and "nothing set".
func msbOfByte(c byte) int {
	for i := 8; i >= 0; i-- {
		if c>>i&1 == 1 {
			return i
		}
	}
	return 0
}

// msbOf returns the highest set bit position of v, or 0 when v is zero.
// The highest-order byte of the serialization is scanned on its own; every
// byte below it contributes 8 positions.
func msbOf(v *big.Int) int {
	buf := v.Bytes()
	if len(buf) == 0 {
		return 0
	}
	return msbOfByte(buf[0]) + 8*(len(buf)-1)
}

// lsbOf returns the lowest set bit position of v, or 0 when v is zero.
// The big-endian serialization is reversed so the walk starts at the low
// end; the first non-zero byte has its bit order flipped so the MSB byte
// helper can locate the low bit.
func lsbOf(v *big.Int) int {
	buf := v.Bytes()
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	for k, c := range buf {
		if c != 0 {
			return 8*k + (7 - msbOfByte(bits.Reverse8(c)))
		}
	}
	return 0
}

// MSB returns the index of the highest set bit.
//
// For the empty bitmap the result is 0. That is not a sentinel: 0 is also
// the legitimate answer for a bitmap whose only member is bit 0. Callers
// that need to distinguish the two should check PopCount or BitLen first.
func (b Bitmap) MSB() int {
	return msbOf(b.bits())
}

// LSB returns the index of the lowest set bit, with the same zero-vs-empty
// ambiguity as MSB.
func (b Bitmap) LSB() int {
	return lsbOf(b.bits())
}

// MSBN returns the top count set bit indices in strictly descending order.
// The result is always exactly count long; when fewer than count bits are
// set the remaining slots are padded with 0 (indistinguishable from a real
// bit-0 result, as with MSB). A count <= 0 yields an empty result.
//
// WithSkip(n) drops the top n set bits before collecting; WithCursor(c)
// restricts the scan to bits strictly below c. Cursor wins if both are
// given.
//
// Each call scans a private working copy; the receiver is untouched.
func (b Bitmap) MSBN(count int, opts ...ScanOption) []int {
	if count <= 0 {
		return nil
	}
	o := applyScanOptions(opts)

	w := new(big.Int).Set(b.bits())
	switch {
	case o.hasCursor:
		// Keep only bits strictly below the cursor: w &= 1<<c - 1.
		mask := new(big.Int).Lsh(bigOne, uint(o.cursor))
		mask.Sub(mask, bigOne)
		w.And(w, mask)
	case o.skip > 0:
		for i := 0; i < o.skip && w.Sign() != 0; i++ {
			w.SetBit(w, msbOf(w), 0)
		}
	}

	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		m := msbOf(w)
		out = append(out, m)
		w.SetBit(w, m, 0)
	}
	return out
}

// LSBN returns the bottom count set bit indices in strictly ascending order,
// zero-padded to exactly count like MSBN.
//
// WithSkip(n) consumes the n lowest set bits before collecting; WithCursor(c)
// restricts the scan to bits strictly above c. Cursor wins if both are
// given.
func (b Bitmap) LSBN(count int, opts ...ScanOption) []int {
	if count <= 0 {
		return nil
	}
	o := applyScanOptions(opts)

	w := new(big.Int).Set(b.bits())
	switch {
	case o.hasCursor:
		// Clear everything at or below the cursor: w = w >> (c+1) << (c+1).
		shift := uint(o.cursor) + 1
		w.Rsh(w, shift)
		w.Lsh(w, shift)
	case o.skip > 0:
		for i := 0; i < o.skip && w.Sign() != 0; i++ {
			w.SetBit(w, lsbOf(w), 0)
		}
	}

	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		l := lsbOf(w)
		out = append(out, l)
		w.SetBit(w, l, 0)
	}
	return out
}
