// Package codec converts between JSON text and node trees.
//
// Parsing is event driven. A streaming tokenizer reports one Event per
// lexical element (scalars, map keys, container starts and ends) and a
// builder assembles the events into a *node.Node tree. Callers that only
// need the events can use Walk directly.
//
// Numbers written without a fraction or exponent that fit in an int64
// become Integer nodes; every other number becomes a Double.
//
// Parse failures are soft: Parse returns whatever part of the tree was
// assembled before the error together with an error wrapping
// errs.ErrSyntax. FromJSON drops the error and only logs it.
//
// Serialization walks the tree depth first. Map keys are written in their
// enumeration order unless WithSortedKeys is given, and Double values always
// carry a fraction or exponent so they read back as Double.
package codec

import "github.com/juju/loggo"

var logger = loggo.GetLogger("pillow.codec")
