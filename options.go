package bitkit

type scanOptions struct {
	skip      int
	cursor    int
	hasCursor bool
}

// ScanOption configures the ranked scans MSBN and LSBN.
//
// Skip and cursor are alternative resumption modes. When both are supplied,
// cursor wins and skip is ignored.
type ScanOption func(*scanOptions)

// WithSkip discards the first n set bits in scan order (from the top for
// MSBN, from the bottom for LSBN) before collecting results. A negative n is
// treated as 0.
func WithSkip(n int) ScanOption {
	return func(o *scanOptions) {
		if n < 0 {
			n = 0
		}
		o.skip = n
	}
}

// WithCursor resumes a scan at position c: MSBN only considers set bits
// strictly below c, LSBN only bits strictly above c. Unlike WithSkip this
// does not require re-counting from the end of the bitmap, so it is the
// right mode for paginating large bitmaps. Panics if c is negative.
func WithCursor(c int) ScanOption {
	return func(o *scanOptions) {
		checkIndex(c)
		o.cursor = c
		o.hasCursor = true
	}
}

func applyScanOptions(opts []ScanOption) scanOptions {
	var o scanOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
