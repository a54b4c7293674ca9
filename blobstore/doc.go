// Package blobstore provides the storage abstraction behind bitkit
// snapshots.
//
// BlobStore is the interface for reading and writing named data blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, atomic rename-on-write
//   - MemoryStore: in-memory, for tests
//   - minio.Store: MinIO / S3-compatible object storage
//
// Snapshot blobs are small (a bitmap's minimal byte encoding, compressed),
// so the interface works in whole blobs; there is no streaming write or
// partial-read surface.
package blobstore
