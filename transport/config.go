package transport

import (
	"net/http"
	"time"

	"github.com/arloliu/pillow/compress"
	"github.com/arloliu/pillow/format"
	"github.com/arloliu/pillow/internal/options"
)

const (
	// DefaultUserAgent is sent with every request; some servers reject
	// requests without one.
	DefaultUserAgent = "pillow-agent/0.1"
	// DefaultConnectTimeout bounds connection establishment. There is no
	// overall request timeout because change feeds stay open indefinitely.
	DefaultConnectTimeout = 10 * time.Second

	defaultTLSTimeout = 10 * time.Second
)

// HTTPConfig holds the settings of an HTTP transport.
type HTTPConfig struct {
	client          *http.Client
	userAgent       string
	connectTimeout  time.Duration
	acceptEncodings []format.ContentCoding
	requestEncoding format.ContentCoding
}

func defaultHTTPConfig() *HTTPConfig {
	return &HTTPConfig{
		userAgent:       DefaultUserAgent,
		connectTimeout:  DefaultConnectTimeout,
		acceptEncodings: []format.ContentCoding{format.CodingGzip},
		requestEncoding: format.CodingIdentity,
	}
}

// HTTPOption represents a functional option for configuring an HTTP transport.
type HTTPOption = options.Option[*HTTPConfig]

// WithHTTPClient sends requests through c instead of a client built from
// the connect timeout. The connect timeout option is then ignored.
func WithHTTPClient(c *http.Client) HTTPOption {
	return options.New(func(cfg *HTTPConfig) error {
		if c == nil {
			return options.Invalidf("http client cannot be nil")
		}
		cfg.client = c

		return nil
	})
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) HTTPOption {
	return options.NoError(func(cfg *HTTPConfig) {
		cfg.userAgent = ua
	})
}

// WithConnectTimeout sets the connection establishment timeout.
func WithConnectTimeout(d time.Duration) HTTPOption {
	return options.New(func(cfg *HTTPConfig) error {
		if d <= 0 {
			return options.Invalidf("connect timeout must be positive, got %s", d)
		}
		cfg.connectTimeout = d

		return nil
	})
}

// WithAcceptEncodings sets the content codings advertised in
// Accept-Encoding, in order of preference. No codings advertises identity
// only.
func WithAcceptEncodings(codings ...format.ContentCoding) HTTPOption {
	return options.New(func(cfg *HTTPConfig) error {
		for _, coding := range codings {
			if _, err := compress.GetCodec(coding); err != nil {
				return options.Invalidf("accept encoding: %v", err)
			}
		}
		cfg.acceptEncodings = append([]format.ContentCoding(nil), codings...)

		return nil
	})
}

// WithRequestEncoding compresses request bodies with coding. The server must
// support it; document store servers generally accept gzip.
func WithRequestEncoding(coding format.ContentCoding) HTTPOption {
	return options.New(func(cfg *HTTPConfig) error {
		if _, err := compress.GetCodec(coding); err != nil {
			return options.Invalidf("request encoding: %v", err)
		}
		cfg.requestEncoding = coding

		return nil
	})
}
