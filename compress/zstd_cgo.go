//go:build gozstd

package compress

import (
	"fmt"
	"io"

	"github.com/valyala/gozstd"
)

const gozstdLevel = 3

// Compress encodes data as a single zstd frame.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, gozstdLevel), nil
}

// Decompress decodes zstd frames.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}

// NewReader returns a reader decoding the zstd stream r.
func (c ZstdCompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	zr := gozstd.NewReader(r)

	return readCloser{Reader: zr, close: func() error {
		zr.Release()
		return nil
	}}, nil
}
