package client

import "context"

//go:generate mockgen -source=transport.go -destination=transport_mock_test.go -package=client

// Transport performs one HTTP exchange.
type Transport interface {
	// Do sends a request with the given method to url with an optional body
	// and returns the response status and the complete response body.
	// A non-nil error means no usable response was received.
	Do(ctx context.Context, method, url string, body []byte) (status int, respBody []byte, err error)
}

// Streamer performs a GET whose body is consumed while it arrives.
type Streamer interface {
	// Stream issues a GET to url and hands every received chunk of the
	// decoded body to recv, in order, until the body ends, ctx is done or
	// recv returns an error. An error returned by recv aborts the transfer
	// and is returned from Stream.
	Stream(ctx context.Context, url string, recv func(chunk []byte) error) (status int, err error)
}
