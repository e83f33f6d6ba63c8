package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arloliu/pillow/errs"
)

var errUnexpectedEnd = errors.New("unexpected end of input")

// scope tracks one open container while tokenizing.
type scope struct {
	isMap     bool
	expectKey bool
}

// Walk tokenizes a single JSON value from data and reports every lexical
// element to handler.
//
// Empty or whitespace-only input reports no events and returns nil.
// Malformed input, including trailing data after the first value, returns an
// error wrapping errs.ErrSyntax once the events preceding the error have
// been delivered.
//
// Parameters:
//   - data: The JSON text
//   - handler: Callback invoked once per event
//
// Returns:
//   - error: A syntax error, the first error returned by handler, or nil
func Walk(data []byte, handler EventHandler) error {
	return WalkReader(bytes.NewReader(data), handler)
}

// WalkReader is Walk reading the JSON text from r.
func WalkReader(r io.Reader, handler EventHandler) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var stack []scope

	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				if len(stack) > 0 {
					return syntaxError(dec, errUnexpectedEnd)
				}
				// empty input
				return nil
			}

			return syntaxError(dec, err)
		}

		ev, err := classify(tok, stack)
		if err != nil {
			return syntaxError(dec, err)
		}

		switch ev.Kind {
		case EventMapStart, EventArrayStart:
			valueDone(stack)
			stack = append(stack, scope{isMap: ev.Kind == EventMapStart, expectKey: ev.Kind == EventMapStart})
		case EventMapEnd, EventArrayEnd:
			stack = stack[:len(stack)-1]
		case EventMapKey:
			stack[len(stack)-1].expectKey = false
		default:
			valueDone(stack)
		}

		if err := handler(ev); err != nil {
			return err
		}

		if len(stack) == 0 {
			// A complete top-level value; anything but whitespace after it
			// is trailing data.
			if tok, err := dec.Token(); err != io.EOF {
				if err != nil {
					return syntaxError(dec, err)
				}
				return syntaxError(dec, fmt.Errorf("trailing data %v after top-level value", tok))
			}

			return nil
		}
	}
}

// valueDone marks a value as consumed in the enclosing map, so the next
// string is a key again.
func valueDone(stack []scope) {
	if len(stack) == 0 {
		return
	}
	if top := &stack[len(stack)-1]; top.isMap {
		top.expectKey = true
	}
}

func classify(tok json.Token, stack []scope) (Event, error) {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return Event{Kind: EventMapStart}, nil
		case '}':
			return Event{Kind: EventMapEnd}, nil
		case '[':
			return Event{Kind: EventArrayStart}, nil
		default:
			return Event{Kind: EventArrayEnd}, nil
		}
	case nil:
		return Event{Kind: EventNull}, nil
	case bool:
		return Event{Kind: EventBoolean, Bool: v}, nil
	case json.Number:
		return numberEvent(v)
	case string:
		if len(stack) > 0 && stack[len(stack)-1].isMap && stack[len(stack)-1].expectKey {
			return Event{Kind: EventMapKey, Text: v}, nil
		}

		return Event{Kind: EventString, Text: v}, nil
	default:
		return Event{}, fmt.Errorf("unexpected token %T", tok)
	}
}

// numberEvent classifies a number literal: no fraction or exponent and in
// int64 range is an Integer, everything else a Double.
func numberEvent(num json.Number) (Event, error) {
	lit := num.String()
	if !strings.ContainsAny(lit, ".eE") {
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return Event{Kind: EventInteger, Int: i}, nil
		}
	}

	f, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Event{}, fmt.Errorf("invalid number %q", lit)
	}

	return Event{Kind: EventDouble, Double: f}, nil
}

func syntaxError(dec *json.Decoder, err error) error {
	return fmt.Errorf("%w: offset %d: %w", errs.ErrSyntax, dec.InputOffset(), err)
}
