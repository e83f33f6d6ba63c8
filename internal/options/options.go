// Package options implements the generic functional options used to
// configure feeds, transports, clients and the JSON writer.
package options

import (
	"errors"
	"fmt"

	"github.com/arloliu/pillow/errs"
)

// Option represents a functional option for configuring any type T.
type Option[T any] interface {
	apply(T) error
}

// Func is a generic functional option that wraps a function.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	if f == nil || f.applyFunc == nil {
		return nil
	}

	return f.applyFunc(target)
}

// New creates an option from a function that may reject its input.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError creates an option from a function that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order and stops at the first failure.
//
// Nil options, including typed nil *Func values, are skipped. A failing
// option's error is returned wrapped with errs.ErrInvalidConfig unless it
// already matches it, so callers can test for configuration problems with
// errors.Is regardless of which option failed.
func Apply[T any](target T, opts ...Option[T]) error {
	for i, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return invalid(i, err)
		}
	}

	return nil
}

// Invalidf builds an error wrapping errs.ErrInvalidConfig for use inside
// option functions.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errs.ErrInvalidConfig, fmt.Sprintf(format, args...))
}

func invalid(index int, err error) error {
	if errors.Is(err, errs.ErrInvalidConfig) {
		return err
	}

	return fmt.Errorf("%w: option %d: %w", errs.ErrInvalidConfig, index, err)
}
