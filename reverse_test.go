package bitkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverse(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.True(t, New().Reverse().Equal(New()))
	})

	t.Run("SingleBit", func(t *testing.T) {
		// The highest bit defines the width, so a lone bit always lands on 0.
		for _, i := range []int{0, 1, 9, 64, 1000} {
			assert.True(t, bitmapOf(i).Reverse().Equal(bitmapOf(0)), "bit %d", i)
		}
	})

	t.Run("Mirror", func(t *testing.T) {
		// Width 6: bit 1 -> 4, bit 5 -> 0.
		assert.True(t, bitmapOf(1, 5).Reverse().Equal(bitmapOf(0, 4)))

		// Width 34: 1 -> 32, 4 -> 29, 9 -> 24, 33 -> 0.
		assert.True(t,
			bitmapOf(1, 4, 9, 33).Reverse().Equal(bitmapOf(32, 29, 24, 0)))
	})

	t.Run("DoubleReverseRoundTrip", func(t *testing.T) {
		// Round-trips when bit 0 is set, because then both passes see the
		// same width.
		b := bitmapOf(0, 3, 7, 42)
		assert.True(t, b.Reverse().Reverse().Equal(b))
	})

	t.Run("WidthShrinksWithoutBitZero", func(t *testing.T) {
		// Trailing zeros are forgotten by the first pass: width goes from
		// 8 (msb 7) to 6 (7-lsb).
		b := bitmapOf(2, 7)
		r := b.Reverse()
		assert.True(t, r.Equal(bitmapOf(0, 5)))
		assert.True(t, r.Reverse().Equal(bitmapOf(0, 5).Reverse()))
	})

	t.Run("PopCountPreserved", func(t *testing.T) {
		b := bitmapOf(1, 4, 33, 1753421, 9326887)
		assert.Equal(t, b.PopCount(), b.Reverse().PopCount())
	})
}
