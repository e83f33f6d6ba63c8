package client

import "github.com/arloliu/pillow/node"

// StatusTransportFailure is the status reported when no response was received.
const StatusTransportFailure = 500

// Response is the result of one document request.
type Response struct {
	// Root is the parsed body; nil when the body was empty, not parsed or
	// not valid JSON.
	Root *node.Node
	// StatusCode is the HTTP status, or StatusTransportFailure.
	StatusCode int
	// Raw is the undecoded response body.
	Raw []byte
	// Err records the transport or parse failure, if any.
	Err error
}

// OK reports whether the status code is in the 2xx range.
func (r *Response) OK() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// Release drops the references held by the response. Calling it is
// optional; it lets a long-lived Response value stop pinning a large body.
func (r *Response) Release() {
	if r == nil {
		return
	}

	r.Root = nil
	r.Raw = nil
}
