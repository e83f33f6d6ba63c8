// Package client issues document requests against a document store server
// and turns response bodies into node trees.
//
// The HTTP exchange itself is delegated to a Transport, so the package never
// depends on a particular HTTP stack; transport.HTTP is the default
// implementation. A transport failure never escapes as an error from the
// request methods: the Response carries status 500 and the failure in Err,
// and callers decide success from StatusCode.
package client

import "github.com/juju/loggo"

var logger = loggo.GetLogger("pillow.client")
