package compress

import (
	"fmt"
	"io"

	"github.com/arloliu/pillow/errs"
	"github.com/arloliu/pillow/format"
)

// Compressor encodes a complete document body with one HTTP content coding.
type Compressor interface {
	// Compress encodes data and returns the encoded body.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller, except
	//     for the identity coding which returns data itself
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor decodes a complete document body.
//
// Thread Safety: Decompressor implementations are safe for concurrent use.
type Decompressor interface {
	// Decompress decodes data and returns the original body.
	//
	// Error conditions:
	//   - Returns error if input data is corrupted or invalid
	//   - Returns error if data was encoded with a different coding
	Decompress(data []byte) ([]byte, error)
}

// StreamDecoder decodes a body while it is being received, which the
// changes feed needs because a continuous response never ends.
type StreamDecoder interface {
	// NewReader returns a reader yielding the decoded bytes of r.
	// Closing the returned reader releases decoder resources; it does not
	// close r.
	NewReader(r io.Reader) (io.ReadCloser, error)
}

// Codec combines both directions for one content coding.
type Codec interface {
	Compressor
	Decompressor
	StreamDecoder

	// Coding returns the content coding implemented by the codec.
	Coding() format.ContentCoding
}

// CompressionStats describes one compression of a request body.
type CompressionStats struct {
	// Coding identifies the content coding used
	Coding format.ContentCoding

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64
}

// NewCompressionStats builds the statistics for one compression.
func NewCompressionStats(coding format.ContentCoding, original, compressed []byte) CompressionStats {
	return CompressionStats{
		Coding:         coding,
		OriginalSize:   int64(len(original)),
		CompressedSize: int64(len(compressed)),
	}
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate successful compression.
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100%).
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec is a factory function that creates a Codec for the specified content coding.
//
// Parameters:
//   - coding: Content coding (identity, gzip, zstd, s2 or lz4)
//
// Returns:
//   - Codec: Codec instance for the specified coding
//   - error: An error wrapping errs.ErrUnsupportedCoding for unknown codings
func CreateCodec(coding format.ContentCoding) (Codec, error) {
	switch coding {
	case format.CodingIdentity:
		return NewNoOpCompressor(), nil
	case format.CodingGzip:
		return NewGzipCompressor(), nil
	case format.CodingZstd:
		return NewZstdCompressor(), nil
	case format.CodingS2:
		return NewS2Compressor(), nil
	case format.CodingLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCoding, coding)
	}
}

var builtinCodecs = map[format.ContentCoding]Codec{
	format.CodingIdentity: NewNoOpCompressor(),
	format.CodingGzip:     NewGzipCompressor(),
	format.CodingZstd:     NewZstdCompressor(),
	format.CodingS2:       NewS2Compressor(),
	format.CodingLZ4:      NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified content coding.
func GetCodec(coding format.ContentCoding) (Codec, error) {
	if codec, ok := builtinCodecs[coding]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCoding, coding)
}

// ForToken retrieves the built-in Codec for a Content-Encoding header value.
func ForToken(token string) (Codec, error) {
	coding, ok := format.ParseContentCoding(token)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnsupportedCoding, token)
	}

	return GetCodec(coding)
}

// readCloser pairs a decoding reader with the function releasing it.
type readCloser struct {
	io.Reader
	close func() error
}

func (rc readCloser) Close() error {
	if rc.close == nil {
		return nil
	}

	return rc.close()
}
