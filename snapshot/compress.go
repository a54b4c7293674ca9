package snapshot

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// ZSTD encoder/decoder pools, shared across managers.
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// compress applies the requested codec and returns the payload together with
// the codec actually used. An incompressible LZ4 input falls back to
// CompressionNone so the frame never grows past raw size plus header.
func compress(raw []byte, codec Compression) ([]byte, Compression, error) {
	if codec == CompressionNone || len(raw) == 0 {
		return raw, CompressionNone, nil
	}

	switch codec {
	case CompressionLZ4:
		dst := make([]byte, lz4.CompressBlockBound(len(raw)))
		n, err := lz4.CompressBlock(raw, dst, nil)
		if err != nil {
			return nil, 0, fmt.Errorf("lz4 compress: %w", err)
		}
		if n == 0 || n >= len(raw) {
			// Incompressible, store raw.
			return raw, CompressionNone, nil
		}
		return dst[:n], CompressionLZ4, nil

	case CompressionZSTD:
		enc := getZstdEncoder()
		defer putZstdEncoder(enc)
		dst := enc.EncodeAll(raw, make([]byte, 0, len(raw)))
		if len(dst) >= len(raw) {
			return raw, CompressionNone, nil
		}
		return dst, CompressionZSTD, nil

	default:
		return nil, 0, fmt.Errorf("%w: %d", ErrInvalidCodec, codec)
	}
}

// decompress reverses compress for the codec recorded in the frame header.
func decompress(payload []byte, codec Compression, uncompressedLen int) ([]byte, error) {
	switch codec {
	case CompressionNone:
		return payload, nil

	case CompressionLZ4:
		dst := make([]byte, uncompressedLen)
		n, err := lz4.UncompressBlock(payload, dst)
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		return dst[:n], nil

	case CompressionZSTD:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)
		dst, err := dec.DecodeAll(payload, make([]byte, 0, uncompressedLen))
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		return dst, nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidCodec, codec)
	}
}
