package snapshot

import "errors"

const (
	// MagicNumber identifies bitkit snapshot blobs (ASCII: "BKS0").
	MagicNumber = 0x424b5330
	// Version is the current snapshot format version.
	Version = 0x00010000
)

var (
	ErrInvalidMagic   = errors.New("invalid magic number")
	ErrInvalidVersion = errors.New("unsupported version")
	ErrInvalidCodec   = errors.New("unknown compression codec")
	ErrTruncated      = errors.New("truncated snapshot")
)

// Compression selects the codec applied to the bitmap bytes.
type Compression uint8

const (
	// CompressionNone stores the bitmap bytes as-is.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fastest).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD block compression (best ratio, default).
	CompressionZSTD Compression = 2
)

// FileHeader is the fixed-size header at the start of every snapshot blob.
type FileHeader struct {
	Magic           uint32 // 0x424b5330 ("BKS0")
	Version         uint32 // Format version
	Codec           uint8  // Compression applied to the payload
	Padding         [3]byte
	UncompressedLen uint32 // Length of the raw bitmap bytes
	Checksum        uint32 // CRC32 (IEEE) of the raw bitmap bytes
}

const fileHeaderSize = 20
