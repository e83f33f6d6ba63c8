package compress

import (
	"io"

	"github.com/arloliu/pillow/format"
)

// NoOpCompressor implements the identity content coding: bodies pass
// through unchanged.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates the identity codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Coding returns format.CodingIdentity.
func (c NoOpCompressor) Coding() format.ContentCoding {
	return format.CodingIdentity
}

// Compress returns the input data directly without copying.
//
// Note: The returned slice shares the same underlying memory as the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input data directly without copying.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// NewReader returns r unchanged, wrapped so that Close does not close r.
func (c NoOpCompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	return readCloser{Reader: r}, nil
}
