package bitkit

import (
	"fmt"
	"math/big"
)

// Bitmap is a set of non-negative bit positions backed by one
// arbitrary-precision unsigned integer. The zero value is the empty bitmap
// and is ready to use.
//
// Bitmap is immutable: Set, Unset and Reverse return new values and never
// modify the receiver. See the package documentation for the aliasing
// guarantees this buys.
type Bitmap struct {
	value *big.Int
}

// New creates an empty bitmap.
func New() Bitmap {
	return Bitmap{value: new(big.Int)}
}

// FromUint64 creates a bitmap whose backing integer is v, i.e. the members
// are exactly the set bits of v.
func FromUint64(v uint64) Bitmap {
	return Bitmap{value: new(big.Int).SetUint64(v)}
}

// FromBytes decodes a bitmap from its minimal big-endian byte encoding, the
// inverse of Bytes. A nil or all-zero slice decodes to the empty bitmap.
func FromBytes(p []byte) Bitmap {
	return Bitmap{value: new(big.Int).SetBytes(p)}
}

// bits returns the backing integer, treating the zero value as zero.
// Callers must not mutate the result.
func (b Bitmap) bits() *big.Int {
	if b.value == nil {
		return new(big.Int)
	}
	return b.value
}

func checkIndex(i int) {
	if i < 0 {
		panic(fmt.Sprintf("bitkit: negative bit index %d", i))
	}
}

// Set returns a bitmap with bit i set to 1. No-op (but still a fresh value)
// if the bit is already set. Panics if i is negative.
func (b Bitmap) Set(i int) Bitmap {
	checkIndex(i)
	v := new(big.Int).Set(b.bits())
	return Bitmap{value: v.SetBit(v, i, 1)}
}

// Unset returns a bitmap with bit i set to 0. No-op (but still a fresh
// value) if the bit is already clear. Panics if i is negative.
func (b Bitmap) Unset(i int) Bitmap {
	checkIndex(i)
	v := new(big.Int).Set(b.bits())
	return Bitmap{value: v.SetBit(v, i, 0)}
}

// IsSet reports whether bit i is set. Panics if i is negative.
func (b Bitmap) IsSet(i int) bool {
	checkIndex(i)
	return b.bits().Bit(i) == 1
}

// Bytes returns the minimal big-endian byte encoding of the bitmap: no
// leading zero bytes, and the empty bitmap encodes to an empty slice. This
// is the canonical wire and file format; FromBytes inverts it.
func (b Bitmap) Bytes() []byte {
	return b.bits().Bytes()
}

// BitLen returns the length of the bitmap in bits: one past the highest set
// index, or 0 for the empty bitmap.
func (b Bitmap) BitLen() int {
	return b.bits().BitLen()
}

// Equal reports whether both bitmaps contain exactly the same members.
func (b Bitmap) Equal(other Bitmap) bool {
	return b.bits().Cmp(other.bits()) == 0
}

// String returns the backing integer in hexadecimal, for debugging.
func (b Bitmap) String() string {
	return fmt.Sprintf("bitkit.Bitmap(0x%s)", b.bits().Text(16))
}
