package compress

import "github.com/arloliu/pillow/format"

// ZstdCompressor implements the zstd content coding (RFC 8878).
//
// The pure Go implementation from klauspost/compress is used by default;
// building with the gozstd tag switches to the cgo bindings of valyala/gozstd.
// Both produce and accept standard zstd frames.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
//
// Example:
//
//	codec := NewZstdCompressor()
//	body, err := codec.Compress(doc)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// Coding returns format.CodingZstd.
func (c ZstdCompressor) Coding() format.ContentCoding {
	return format.CodingZstd
}
