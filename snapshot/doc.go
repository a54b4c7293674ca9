// Package snapshot persists bitkit bitmaps through a blobstore.
//
// A snapshot is the bitmap's minimal big-endian byte encoding, optionally
// compressed (zstd by default, lz4 available), wrapped in a small header
// carrying a magic number, format version, codec and a CRC32 of the raw
// bytes.
//
// Load is deliberately lenient: a missing blob, a truncated or corrupt
// frame, or a checksum mismatch is logged and answered with the empty
// bitmap. Persistence failures must not take down a caller that can
// rebuild its state; callers that need to distinguish "empty" from
// "unreadable" should watch the log.
package snapshot
