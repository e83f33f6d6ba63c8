// Package feed consumes the changes feed of a document store database.
//
// A ChangesFeed is configured once and run any number of times, one run at a
// time. A one-shot run fetches the whole feed, parses it as one document and
// hands it to the handler. A continuous run keeps the request open: a
// producer goroutine splits the body into newline-terminated records while
// the calling goroutine dispatches every parsed record to the handler in
// arrival order. Blank records are heartbeats and reach the handler as Null
// nodes; malformed records reach it as nil.
//
// The handler requests an early stop by returning a negative value. Records
// already queued at that point are still dispatched, but no further bytes
// are accepted from the server.
package feed

import "github.com/juju/loggo"

var logger = loggo.GetLogger("pillow.feed")
