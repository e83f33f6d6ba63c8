// Package compress provides the HTTP content codings used for document
// bodies and change feed streams.
//
// Each supported format.ContentCoding has a Codec that can encode and
// decode whole bodies and wrap a streaming response:
//   - Identity: No transformation
//   - Gzip: klauspost/compress/gzip, understood by every server
//   - Zstd: klauspost/compress/zstd, or valyala/gozstd with the gozstd build tag
//   - S2: klauspost/compress/s2 stream format (x-s2)
//   - LZ4: pierrec/lz4 frame format (x-lz4)
//
// # Architecture
//
//	type Codec interface {
//	    Compress(data []byte) ([]byte, error)
//	    Decompress(data []byte) ([]byte, error)
//	    NewReader(r io.Reader) (io.ReadCloser, error)
//	    Coding() format.ContentCoding
//	}
//
// Whole-body methods are used for PUT requests and buffered responses.
// NewReader is used for the continuous changes feed, whose body never
// completes, so it must be decoded as it arrives.
//
// # Usage
//
//	codec, err := compress.ForToken(resp.Header.Get("Content-Encoding"))
//	if err != nil {
//	    return err
//	}
//	body, err := codec.NewReader(resp.Body)
//
// # Thread Safety
//
// All codec implementations are stateless values and can be shared across
// goroutines. Encoders and decoders are pooled internally.
package compress
