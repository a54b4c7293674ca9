// Package bitkit provides an arbitrary-precision bitmap for Go.
//
// A Bitmap is a growable set of non-negative bit positions backed by a single
// unbounded unsigned integer: bit i being 1 means index i is a member. There
// is no capacity to declare — setting bit 30,000,000 just works (bounded only
// by memory).
//
// # Value Semantics
//
// Bitmap is an immutable value type. Every mutator returns a new Bitmap that
// owns its storage exclusively; the receiver is never modified and derived
// values never alias it. Any number of goroutines may therefore read or
// derive from the same Bitmap concurrently without synchronization.
//
//	b := bitkit.New().Set(1).Set(4).Set(9).Set(33)
//	b.PopCount() // 4
//	b.MSB()      // 33
//
// # Ranked Scans
//
// MSBN and LSBN enumerate the top/bottom set positions, with skip- and
// cursor-based resumption for pagination:
//
//	top := b.MSBN(10)                          // [33 9 4 1 0 0 0 0 0 0]
//	page := b.MSBN(10, bitkit.WithCursor(33))  // bits strictly below 33
//
// Results are always exactly count long, zero-padded when fewer bits are set.
// Index 0 is deliberately overloaded: it is both a real answer ("bit 0 is
// set") and the padding value ("no more bits"). Callers that need to tell the
// two apart should consult PopCount first.
//
// # Persistence
//
// Bytes/FromBytes expose the canonical minimal big-endian encoding. The
// snapshot package writes that encoding compressed and checksummed through a
// pluggable blobstore (local filesystem, in-memory, S3-compatible).
package bitkit
