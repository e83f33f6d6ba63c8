package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/arloliu/pillow/codec"
	"github.com/arloliu/pillow/errs"
	"github.com/arloliu/pillow/node"
)

// Client issues document requests through a Transport.
//
// A Client is safe for concurrent use when its Transport is.
type Client struct {
	transport Transport
}

// New creates a Client sending requests through t.
func New(t Transport) *Client {
	return &Client{transport: t}
}

// Transport returns the transport used by the client.
func (c *Client) Transport() Transport {
	return c.transport
}

// Get fetches url and parses the body.
func (c *Client) Get(ctx context.Context, url string) *Response {
	return c.parsed(c.do(ctx, http.MethodGet, url, nil))
}

// UnparsedGet fetches url and keeps the body in Raw without parsing it.
func (c *Client) UnparsedGet(ctx context.Context, url string) *Response {
	return c.do(ctx, http.MethodGet, url, nil)
}

// Put serializes doc compactly, stores it at url and parses the reply.
// A nil doc sends an empty body, which creates a database on a document
// store server.
func (c *Client) Put(ctx context.Context, url string, doc *node.Node) *Response {
	var body []byte
	if doc != nil {
		body = codec.ToJSON(doc, false)
	}

	return c.PutRaw(ctx, url, body)
}

// PutRaw stores body at url unchanged and parses the reply.
func (c *Client) PutRaw(ctx context.Context, url string, body []byte) *Response {
	return c.parsed(c.do(ctx, http.MethodPut, url, body))
}

// Delete deletes the resource at url and parses the reply.
func (c *Client) Delete(ctx context.Context, url string) *Response {
	return c.parsed(c.do(ctx, http.MethodDelete, url, nil))
}

func (c *Client) do(ctx context.Context, method, url string, body []byte) *Response {
	logger.Debugf("%s %s (%d bytes)", method, url, len(body))

	status, raw, err := c.transport.Do(ctx, method, url, body)
	if err != nil {
		logger.Warningf("%s %s failed: %v", method, url, err)
		return &Response{
			StatusCode: StatusTransportFailure,
			Err:        fmt.Errorf("%w: %s %s: %w", errs.ErrTransport, method, url, err),
		}
	}

	return &Response{StatusCode: status, Raw: raw}
}

func (c *Client) parsed(res *Response) *Response {
	if len(res.Raw) == 0 {
		return res
	}

	root, err := codec.Parse(res.Raw)
	if err != nil {
		logger.Debugf("response body is not valid JSON: %v", err)
		res.Err = err
		return res
	}
	res.Root = root

	return res
}
