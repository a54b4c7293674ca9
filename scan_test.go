package bitkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMSB(t *testing.T) {
	t.Run("SingleBits", func(t *testing.T) {
		for _, i := range []int{0, 1, 7, 8, 9, 63, 64, 1000} {
			assert.Equal(t, i, bitmapOf(i).MSB(), "bit %d", i)
		}
	})

	t.Run("HighestWins", func(t *testing.T) {
		assert.Equal(t, 33, bitmapOf(1, 4, 9, 33).MSB())
		assert.Equal(t, 9326887, bitmapOf(1, 4, 33, 1753421, 9326887).MSB())
	})

	t.Run("EmptyIsZero", func(t *testing.T) {
		// 0 doubles as "bit 0" and "nothing set"; documented ambiguity.
		assert.Equal(t, 0, New().MSB())
		assert.Equal(t, 0, bitmapOf(0).MSB())
	})

	t.Run("NoBitAbove", func(t *testing.T) {
		b := bitmapOf(3, 17, 90)
		m := b.MSB()
		assert.True(t, b.IsSet(m))
		for i := m + 1; i < m+64; i++ {
			assert.False(t, b.IsSet(i))
		}
	})
}

func TestLSB(t *testing.T) {
	t.Run("SingleBits", func(t *testing.T) {
		for _, i := range []int{0, 1, 7, 8, 9, 63, 64, 1000} {
			assert.Equal(t, i, bitmapOf(i).LSB(), "bit %d", i)
		}
	})

	t.Run("LowestWins", func(t *testing.T) {
		assert.Equal(t, 1, bitmapOf(1, 4, 9, 33).LSB())
		assert.Equal(t, 33, bitmapOf(33, 1753421, 9326887).LSB())
	})

	t.Run("EmptyIsZero", func(t *testing.T) {
		assert.Equal(t, 0, New().LSB())
	})
}

func TestMSBN(t *testing.T) {
	// Bitmap from the reference scenario. Unset of absent bits is a no-op
	// and must not disturb the members.
	b := bitmapOf(1, 4, 33, 1753421, 9326887).Unset(32).Unset(9)

	t.Run("DescendingWithPadding", func(t *testing.T) {
		assert.Equal(t,
			[]int{9326887, 1753421, 33, 4, 1, 0, 0, 0, 0, 0},
			b.MSBN(10))
	})

	t.Run("ExactCount", func(t *testing.T) {
		assert.Equal(t, []int{9326887, 1753421, 33}, b.MSBN(3))
	})

	t.Run("Skip", func(t *testing.T) {
		assert.Equal(t,
			[]int{4, 1, 0, 0, 0, 0, 0, 0, 0, 0},
			b.MSBN(10, WithSkip(3)))
	})

	t.Run("SkipPastEnd", func(t *testing.T) {
		assert.Equal(t, []int{0, 0, 0}, b.MSBN(3, WithSkip(99)))
	})

	t.Run("Cursor", func(t *testing.T) {
		assert.Equal(t,
			[]int{4, 1, 0, 0, 0, 0, 0, 0, 0, 0},
			b.MSBN(10, WithCursor(33)))
	})

	t.Run("CursorIsExclusive", func(t *testing.T) {
		// Bit 33 itself is masked out; 34 would keep it.
		assert.Equal(t, []int{33, 4, 1}, b.MSBN(3, WithCursor(34)))
	})

	t.Run("CursorPagination", func(t *testing.T) {
		page1 := b.MSBN(2)
		assert.Equal(t, []int{9326887, 1753421}, page1)

		page2 := b.MSBN(2, WithCursor(page1[1]))
		assert.Equal(t, []int{33, 4}, page2)

		page3 := b.MSBN(2, WithCursor(page2[1]))
		assert.Equal(t, []int{1, 0}, page3)
	})

	t.Run("CursorWinsOverSkip", func(t *testing.T) {
		assert.Equal(t,
			b.MSBN(10, WithCursor(33)),
			b.MSBN(10, WithSkip(1), WithCursor(33)))
	})

	t.Run("CursorZero", func(t *testing.T) {
		assert.Equal(t, []int{0, 0}, b.MSBN(2, WithCursor(0)))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, []int{0, 0, 0, 0}, New().MSBN(4))
	})

	t.Run("NonPositiveCount", func(t *testing.T) {
		assert.Empty(t, b.MSBN(0))
		assert.Empty(t, b.MSBN(-3))
	})

	t.Run("ReceiverUntouched", func(t *testing.T) {
		_ = b.MSBN(10, WithSkip(2))
		assert.True(t, b.Equal(bitmapOf(1, 4, 33, 1753421, 9326887)))
	})
}

func TestLSBN(t *testing.T) {
	b := bitmapOf(1, 4, 33, 1753421, 9326887)

	t.Run("AscendingWithPadding", func(t *testing.T) {
		assert.Equal(t,
			[]int{1, 4, 33, 1753421, 9326887, 0, 0, 0, 0, 0},
			b.LSBN(10))
	})

	t.Run("Skip", func(t *testing.T) {
		assert.Equal(t,
			[]int{33, 1753421, 9326887, 0, 0},
			b.LSBN(5, WithSkip(2)))
	})

	t.Run("Cursor", func(t *testing.T) {
		// Strictly above 4.
		assert.Equal(t,
			[]int{33, 1753421, 9326887, 0, 0},
			b.LSBN(5, WithCursor(4)))
	})

	t.Run("CursorIsExclusive", func(t *testing.T) {
		assert.Equal(t, []int{4, 33}, b.LSBN(2, WithCursor(1)))
		assert.Equal(t, []int{1, 4}, b.LSBN(2, WithCursor(0)))
	})

	t.Run("CursorWinsOverSkip", func(t *testing.T) {
		assert.Equal(t,
			b.LSBN(5, WithCursor(33)),
			b.LSBN(5, WithSkip(4), WithCursor(33)))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, []int{0, 0, 0}, New().LSBN(3))
	})

	t.Run("ReceiverUntouched", func(t *testing.T) {
		_ = b.LSBN(10, WithSkip(2))
		assert.True(t, b.Equal(bitmapOf(1, 4, 33, 1753421, 9326887)))
	})
}

func TestScanOptions(t *testing.T) {
	t.Run("NegativeSkipTreatedAsZero", func(t *testing.T) {
		b := bitmapOf(2, 5)
		assert.Equal(t, b.MSBN(2), b.MSBN(2, WithSkip(-4)))
	})

	t.Run("NegativeCursorPanics", func(t *testing.T) {
		assert.Panics(t, func() { bitmapOf(2).MSBN(1, WithCursor(-1)) })
	})
}
