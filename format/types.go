package format

import "strings"

type (
	// ContentCoding identifies an HTTP content coding applied to a document body.
	ContentCoding uint8
)

const (
	CodingIdentity ContentCoding = 0x1 // CodingIdentity represents an unencoded body.
	CodingGzip     ContentCoding = 0x2 // CodingGzip represents gzip (RFC 1952).
	CodingZstd     ContentCoding = 0x3 // CodingZstd represents Zstandard (RFC 8878).
	CodingS2       ContentCoding = 0x4 // CodingS2 represents the S2 stream format.
	CodingLZ4      ContentCoding = 0x5 // CodingLZ4 represents the LZ4 frame format.
)

// String returns the human readable name of the coding.
func (c ContentCoding) String() string {
	switch c {
	case CodingIdentity:
		return "Identity"
	case CodingGzip:
		return "Gzip"
	case CodingZstd:
		return "Zstd"
	case CodingS2:
		return "S2"
	case CodingLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Token returns the value used for the coding in Content-Encoding and
// Accept-Encoding headers. Unknown codings return an empty token.
func (c ContentCoding) Token() string {
	switch c {
	case CodingIdentity:
		return "identity"
	case CodingGzip:
		return "gzip"
	case CodingZstd:
		return "zstd"
	case CodingS2:
		return "x-s2"
	case CodingLZ4:
		return "x-lz4"
	default:
		return ""
	}
}

// ParseContentCoding maps a Content-Encoding header value to a coding.
//
// Matching is case-insensitive and ignores surrounding whitespace; an empty
// value is the identity coding. The second result is false for tokens no
// coding claims.
func ParseContentCoding(token string) (ContentCoding, bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "", "identity":
		return CodingIdentity, true
	case "gzip", "x-gzip":
		return CodingGzip, true
	case "zstd":
		return CodingZstd, true
	case "x-s2":
		return CodingS2, true
	case "x-lz4":
		return CodingLZ4, true
	default:
		return 0, false
	}
}
