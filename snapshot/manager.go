package snapshot

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hupe1980/bitkit"
	"github.com/hupe1980/bitkit/blobstore"
	"golang.org/x/sync/errgroup"
)

type options struct {
	compression Compression
	logger      *slog.Logger
}

// Option configures a Manager.
type Option func(*options)

// WithCompression selects the snapshot codec. The default is zstd.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithLogger sets the logger used to report lenient-load failures.
// The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Manager saves and loads bitmaps through a BlobStore.
type Manager struct {
	store       blobstore.BlobStore
	compression Compression
	logger      *slog.Logger
}

// NewManager creates a Manager writing through the given store.
func NewManager(store blobstore.BlobStore, opts ...Option) *Manager {
	o := options{
		compression: CompressionZSTD,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Manager{
		store:       store,
		compression: o.compression,
		logger:      o.logger,
	}
}

// Save writes the bitmap under the given blob name.
func (m *Manager) Save(ctx context.Context, name string, b bitkit.Bitmap) error {
	frame, err := encodeFrame(b.Bytes(), m.compression)
	if err != nil {
		return fmt.Errorf("snapshot: encode %q: %w", name, err)
	}
	if err := m.store.Put(ctx, name, frame); err != nil {
		return fmt.Errorf("snapshot: write %q: %w", name, err)
	}
	return nil
}

// Load reads the bitmap stored under the given blob name.
//
// Load never fails: a missing blob, a corrupt frame or a checksum mismatch
// is logged and the empty bitmap returned, so callers recover by rebuilding
// state rather than crashing on unreadable persistence.
func (m *Manager) Load(ctx context.Context, name string) bitkit.Bitmap {
	b, err := m.load(ctx, name)
	if err != nil {
		m.logger.WarnContext(ctx, "snapshot load failed, starting empty",
			"name", name,
			"error", err,
		)
		return bitkit.New()
	}
	return b
}

func (m *Manager) load(ctx context.Context, name string) (bitkit.Bitmap, error) {
	blob, err := m.store.Open(ctx, name)
	if err != nil {
		return bitkit.Bitmap{}, err
	}
	defer func() {
		_ = blob.Close()
	}()

	frame, err := blobstore.ReadAll(blob)
	if err != nil {
		return bitkit.Bitmap{}, err
	}
	raw, err := decodeFrame(frame)
	if err != nil {
		return bitkit.Bitmap{}, err
	}
	return bitkit.FromBytes(raw), nil
}

// Delete removes a stored snapshot.
func (m *Manager) Delete(ctx context.Context, name string) error {
	return m.store.Delete(ctx, name)
}

// SaveAll writes a set of named bitmaps concurrently. Useful for callers
// that shard a domain across multiple bitmaps and checkpoint the shard set
// in one go. The first error cancels the remaining writes.
func (m *Manager) SaveAll(ctx context.Context, bitmaps map[string]bitkit.Bitmap) error {
	g, ctx := errgroup.WithContext(ctx)
	for name, b := range bitmaps {
		name, b := name, b
		g.Go(func() error {
			return m.Save(ctx, name, b)
		})
	}
	return g.Wait()
}

// LoadAll loads the named snapshots concurrently, with the same lenient
// per-snapshot semantics as Load. The result always has one entry per name.
func (m *Manager) LoadAll(ctx context.Context, names []string) map[string]bitkit.Bitmap {
	var mu sync.Mutex
	out := make(map[string]bitkit.Bitmap, len(names))

	var wg sync.WaitGroup
	for _, name := range names {
		name := name
		wg.Add(1)
		go func() {
			defer wg.Done()
			b := m.Load(ctx, name)
			mu.Lock()
			out[name] = b
			mu.Unlock()
		}()
	}
	wg.Wait()
	return out
}

// encodeFrame wraps the raw bitmap bytes in the snapshot frame.
func encodeFrame(raw []byte, codec Compression) ([]byte, error) {
	payload, effective, err := compress(raw, codec)
	if err != nil {
		return nil, err
	}

	header := FileHeader{
		Magic:           MagicNumber,
		Version:         Version,
		Codec:           uint8(effective),
		UncompressedLen: uint32(len(raw)),
		Checksum:        checksum(raw),
	}

	var buf bytes.Buffer
	buf.Grow(fileHeaderSize + len(payload))
	if err := binary.Write(&buf, binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	buf.Write(payload)
	return buf.Bytes(), nil
}

// decodeFrame validates the frame and returns the raw bitmap bytes.
func decodeFrame(frame []byte) ([]byte, error) {
	if len(frame) < fileHeaderSize {
		return nil, ErrTruncated
	}

	var header FileHeader
	if err := binary.Read(bytes.NewReader(frame[:fileHeaderSize]), binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	if header.Magic != MagicNumber {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, header.Magic)
	}
	if header.Version != Version {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidVersion, header.Version)
	}

	raw, err := decompress(frame[fileHeaderSize:], Compression(header.Codec), int(header.UncompressedLen))
	if err != nil {
		return nil, err
	}
	if len(raw) != int(header.UncompressedLen) {
		return nil, fmt.Errorf("%w: payload length %d, header says %d", ErrTruncated, len(raw), header.UncompressedLen)
	}
	if got := checksum(raw); got != header.Checksum {
		return nil, &ChecksumMismatchError{Expected: header.Checksum, Actual: got}
	}
	return raw, nil
}
