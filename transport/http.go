// Package transport provides the default net/http implementation of the
// client transport and streamer.
package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/juju/loggo"

	"github.com/arloliu/pillow/client"
	"github.com/arloliu/pillow/compress"
	"github.com/arloliu/pillow/format"
	"github.com/arloliu/pillow/internal/options"
	"github.com/arloliu/pillow/internal/pool"
)

var logger = loggo.GetLogger("pillow.transport")

const streamChunkSize = 4096

// HTTP performs document requests over net/http.
type HTTP struct {
	client          *http.Client
	userAgent       string
	acceptEncoding  string
	requestEncoding compress.Codec
}

var (
	_ client.Transport = (*HTTP)(nil)
	_ client.Streamer  = (*HTTP)(nil)
)

// NewHTTP creates an HTTP transport.
//
// Parameters:
//   - opts: Transport options
//
// Returns:
//   - *HTTP: The transport
//   - error: An invalid option, wrapping errs.ErrInvalidConfig
func NewHTTP(opts ...HTTPOption) (*HTTP, error) {
	cfg := defaultHTTPConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	hc := cfg.client
	if hc == nil {
		hc = defaultClient(cfg)
	}

	reqCodec, err := compress.GetCodec(cfg.requestEncoding)
	if err != nil {
		return nil, err
	}

	tokens := make([]string, 0, len(cfg.acceptEncodings))
	for _, coding := range cfg.acceptEncodings {
		tokens = append(tokens, coding.Token())
	}

	return &HTTP{
		client:          hc,
		userAgent:       cfg.userAgent,
		acceptEncoding:  strings.Join(tokens, ", "),
		requestEncoding: reqCodec,
	}, nil
}

func defaultClient(cfg *HTTPConfig) *http.Client {
	dialer := &net.Dialer{
		Timeout: cfg.connectTimeout,
	}
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         dialer.DialContext,
		TLSHandshakeTimeout: defaultTLSTimeout,
	}

	return &http.Client{Transport: transport}
}

// Do sends one request and returns the status and the decoded body.
func (h *HTTP) Do(ctx context.Context, method, url string, body []byte) (int, []byte, error) {
	resp, err := h.send(ctx, method, url, body)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	r, err := decodedBody(resp)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	defer r.Close()

	buf := pool.GetDocumentBuffer()
	defer pool.PutDocumentBuffer(buf)

	if _, err := buf.ReadFrom(r); err != nil {
		return resp.StatusCode, nil, fmt.Errorf("reading response body: %w", err)
	}
	logger.Tracef("%s %s: status %d, %d bytes", method, url, resp.StatusCode, buf.Len())

	if buf.Len() == 0 {
		return resp.StatusCode, nil, nil
	}

	return resp.StatusCode, bytes.Clone(buf.Bytes()), nil
}

// Stream issues a GET and passes the decoded body to recv as it arrives.
func (h *HTTP) Stream(ctx context.Context, url string, recv func(chunk []byte) error) (int, error) {
	resp, err := h.send(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	r, err := decodedBody(resp)
	if err != nil {
		return resp.StatusCode, err
	}
	defer r.Close()

	chunk := make([]byte, streamChunkSize)
	for {
		n, readErr := r.Read(chunk)
		if n > 0 {
			logger.Tracef("GET %s: received %d bytes", url, n)
			if err := recv(chunk[:n]); err != nil {
				return resp.StatusCode, err
			}
		}
		if readErr == io.EOF {
			return resp.StatusCode, nil
		}
		if readErr != nil {
			return resp.StatusCode, fmt.Errorf("reading response stream: %w", readErr)
		}
	}
}

func (h *HTTP) send(ctx context.Context, method, url string, body []byte) (*http.Response, error) {
	var payload io.Reader
	encoded := body
	if len(body) > 0 {
		if h.requestEncoding.Coding() != format.CodingIdentity {
			var err error
			encoded, err = h.requestEncoding.Compress(body)
			if err != nil {
				return nil, fmt.Errorf("encoding request body: %w", err)
			}
			stats := compress.NewCompressionStats(h.requestEncoding.Coding(), body, encoded)
			logger.Tracef("%s %s: %s body %d -> %d bytes (%.1f%% saved)",
				method, url, stats.Coding, stats.OriginalSize, stats.CompressedSize, stats.SpaceSavings())
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("Accept", "application/json")
	if h.acceptEncoding != "" {
		req.Header.Set("Accept-Encoding", h.acceptEncoding)
	} else {
		req.Header.Set("Accept-Encoding", format.CodingIdentity.Token())
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
		if h.requestEncoding.Coding() != format.CodingIdentity {
			req.Header.Set("Content-Encoding", h.requestEncoding.Coding().Token())
		}
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// decodedBody wraps the response body in the decoder named by its
// Content-Encoding header.
func decodedBody(resp *http.Response) (io.ReadCloser, error) {
	token := resp.Header.Get("Content-Encoding")
	if resp.Uncompressed {
		token = ""
	}

	codec, err := compress.ForToken(token)
	if err != nil {
		return nil, err
	}

	r, err := codec.NewReader(resp.Body)
	if errors.Is(err, io.EOF) {
		// encoded but empty body
		return io.NopCloser(bytes.NewReader(nil)), nil
	}
	if err != nil {
		return nil, err
	}

	return r, nil
}
