package snapshot

import (
	"fmt"
	"hash/crc32"
)

// Snapshots carry a CRC32 (IEEE) of the raw bitmap bytes: fast, hardware
// accelerated, and good enough to catch storage corruption. It is not a
// defense against tampering.

func checksum(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

// ChecksumMismatchError is returned when snapshot verification fails.
type ChecksumMismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected 0x%08x, got 0x%08x", e.Expected, e.Actual)
}
