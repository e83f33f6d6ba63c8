// Package errs defines the sentinel errors shared by the pillow packages.
//
// Callers match them with errors.Is; the packages wrap them with context using
// fmt.Errorf("%w: ...").
package errs

import "errors"

// Codec errors.
var (
	// ErrSyntax indicates the input is not well-formed JSON. A parse that fails
	// with ErrSyntax still returns whatever partial tree it had built.
	ErrSyntax = errors.New("malformed json")
)

// Tree operation errors.
var (
	// ErrMergeConflict indicates that a merge found a key whose existing value
	// has a different kind than the addition, or that the merge arguments are
	// not maps. Changes applied before the conflict are not rolled back.
	ErrMergeConflict = errors.New("merge conflict")
)

// Changes feed errors.
var (
	// ErrAborted is returned by the feed receive path once the handler has
	// requested a stop. The producer treats it as the end of the stream.
	ErrAborted = errors.New("changes feed aborted")

	// ErrRunning is returned when Run is called on a feed that is already running.
	ErrRunning = errors.New("changes feed is already running")

	// ErrInvalidConfig indicates an option carried an unusable value.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Transport errors.
var (
	// ErrTransport indicates the underlying HTTP exchange failed.
	ErrTransport = errors.New("transport failure")

	// ErrUnsupportedCoding indicates a content coding that no codec handles.
	ErrUnsupportedCoding = errors.New("unsupported content coding")
)
