// Package pillow is a client library for JSON document stores such as
// CouchDB.
//
// Documents are trees of node.Node values. The codec package converts between
// trees and JSON text, the tree package clones, compares and merges trees,
// the client package fetches and stores documents and the feed package
// follows a database's changes feed.
//
// # Basic Usage
//
// Fetching, modifying and storing a document:
//
//	import "github.com/arloliu/pillow"
//
//	c, _ := pillow.NewClient()
//	res := c.Get(ctx, "http://localhost:5984/pillowtalk_basics/star_wars")
//	if !res.OK() {
//	    log.Fatalf("get failed: %d", res.StatusCode)
//	}
//	doc := res.Root
//	doc.Set("seen", node.NewBool(true))
//	res = c.Put(ctx, "http://localhost:5984/pillowtalk_basics/star_wars", doc)
//
// Following a changes feed:
//
//	f, _ := pillow.NewChangesFeed(c,
//	    feed.WithContinuous(true),
//	    feed.WithHeartbeat(5000),
//	    feed.WithHandler(func(event *node.Node) int {
//	        fmt.Println(string(pillow.ToJSON(event, false)))
//	        return 0
//	    }),
//	)
//	err := f.Run(ctx, "http://localhost:5984", "pillowtalk_basics")
//
// # Package Structure
//
// This package wires the default HTTP transport into the client and feed
// packages. Use those packages directly to plug in another transport.
package pillow

import (
	"fmt"

	"github.com/arloliu/pillow/client"
	"github.com/arloliu/pillow/codec"
	"github.com/arloliu/pillow/errs"
	"github.com/arloliu/pillow/feed"
	"github.com/arloliu/pillow/node"
	"github.com/arloliu/pillow/transport"
	"github.com/arloliu/pillow/tree"
)

// NewClient creates a document client on top of the HTTP transport.
//
// Parameters:
//   - opts: HTTP transport options (see transport.HTTPOption)
//
// Returns:
//   - *client.Client: The created client
//   - error: An error if an option is invalid
//
// Example:
//
//	c, err := pillow.NewClient(
//	    transport.WithAcceptEncodings(format.CodingGzip, format.CodingZstd),
//	    transport.WithConnectTimeout(3*time.Second),
//	)
func NewClient(opts ...transport.HTTPOption) (*client.Client, error) {
	t, err := transport.NewHTTP(opts...)
	if err != nil {
		return nil, err
	}

	return client.New(t), nil
}

// NewChangesFeed creates a changes feed that reads through the transport of c.
//
// The transport must also implement client.Streamer, which the HTTP transport
// used by NewClient does.
//
// Parameters:
//   - c: The client whose transport performs the streaming request
//   - opts: Feed options (see feed.Option)
//
// Returns:
//   - *feed.ChangesFeed: The created feed
//   - error: errs.ErrInvalidConfig if the transport cannot stream or an option is invalid
func NewChangesFeed(c *client.Client, opts ...feed.Option) (*feed.ChangesFeed, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: client must not be nil", errs.ErrInvalidConfig)
	}
	streamer, ok := c.Transport().(client.Streamer)
	if !ok {
		return nil, fmt.Errorf("%w: transport %T cannot stream", errs.ErrInvalidConfig, c.Transport())
	}

	return feed.New(streamer, opts...)
}

// FromJSON parses s into a tree, returning nil when s is empty or malformed.
func FromJSON(s string) *node.Node {
	return codec.FromJSON(s)
}

// ToJSON serializes the tree rooted at n, compact or beautified.
func ToJSON(n *node.Node, beautify bool) []byte {
	return codec.ToJSON(n, beautify)
}

// Merge adds the entries of additions to root, recursing into nested maps.
// See tree.Update for the conflict rules.
func Merge(root, additions *node.Node) error {
	return tree.Update(root, additions, false)
}
