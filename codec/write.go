package codec

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/mailru/easyjson/jwriter"

	"github.com/arloliu/pillow/internal/options"
	"github.com/arloliu/pillow/node"
)

// beautifyIndent is the indentation unit used by ToJSON when beautifying.
const beautifyIndent = "  "

// MarshalConfig holds the serialization settings applied by Marshal.
type MarshalConfig struct {
	indent          string
	sortKeys        bool
	trailingNewline bool
}

// MarshalOption represents a functional option for configuring Marshal.
type MarshalOption = options.Option[*MarshalConfig]

// WithIndent enables pretty printing with the given indentation unit.
// An empty indent selects compact output.
func WithIndent(indent string) MarshalOption {
	return options.New(func(c *MarshalConfig) error {
		if strings.Trim(indent, " \t") != "" {
			return options.Invalidf("indent must only contain spaces or tabs, got %q", indent)
		}
		c.indent = indent

		return nil
	})
}

// WithSortedKeys writes map keys in ascending byte order instead of their
// enumeration order. Two equal trees always serialize identically with it.
func WithSortedKeys() MarshalOption {
	return options.NoError(func(c *MarshalConfig) {
		c.sortKeys = true
	})
}

// WithTrailingNewline terminates the output with a newline.
func WithTrailingNewline() MarshalOption {
	return options.NoError(func(c *MarshalConfig) {
		c.trailingNewline = true
	})
}

// Marshal serializes the tree rooted at n.
//
// A nil root serializes as null. Without options the output is compact with
// map keys in enumeration order.
//
// Parameters:
//   - n: The tree root, may be nil
//   - opts: Serialization options
//
// Returns:
//   - []byte: The JSON text
//   - error: An invalid option, nil otherwise
func Marshal(n *node.Node, opts ...MarshalOption) ([]byte, error) {
	cfg := &MarshalConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return encode(n, cfg), nil
}

// ToJSON serializes the tree rooted at n.
//
// Compact output has no whitespace between tokens. When beautify is set the
// output is indented by two spaces per level, uses ": " after map keys and
// ends with a newline.
func ToJSON(n *node.Node, beautify bool) []byte {
	cfg := &MarshalConfig{}
	if beautify {
		cfg.indent = beautifyIndent
		cfg.trailingNewline = true
	}

	return encode(n, cfg)
}

func encode(n *node.Node, cfg *MarshalConfig) []byte {
	e := encoder{cfg: cfg}
	e.w.NoEscapeHTML = true
	e.value(n)
	if cfg.trailingNewline {
		e.w.RawByte('\n')
	}

	// BuildBytes only fails when a writer error was recorded, which the
	// encoder never does.
	out, _ := e.w.BuildBytes()

	return out
}

type encoder struct {
	w     jwriter.Writer
	cfg   *MarshalConfig
	depth int
}

func (e *encoder) value(n *node.Node) {
	switch n.Kind() {
	case node.Null:
		e.w.RawString("null")
	case node.Boolean:
		e.w.Bool(n.BoolValue())
	case node.Integer:
		e.w.Int64(n.IntValue())
	case node.Double:
		e.double(n.DoubleValue())
	case node.String:
		s, _ := n.StringValue()
		e.w.String(s)
	case node.Array:
		e.array(n)
	case node.Map:
		e.object(n)
	default:
		e.w.RawString("null")
	}
}

// double writes f so that it reads back as a Double. Values JSON cannot
// represent are written as null.
func (e *encoder) double(f float64) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		e.w.RawString("null")
		return
	}

	var scratch [32]byte
	b := strconv.AppendFloat(scratch[:0], f, 'g', -1, 64)
	e.w.Raw(b, nil)
	if !slices.ContainsFunc(b, func(c byte) bool { return c == '.' || c == 'e' }) {
		e.w.RawString(".0")
	}
}

func (e *encoder) array(n *node.Node) {
	if n.Len() == 0 {
		e.w.RawString("[]")
		return
	}

	e.w.RawByte('[')
	e.depth++
	for i := 0; i < n.Len(); i++ {
		if i > 0 {
			e.w.RawByte(',')
		}
		e.newline()
		e.value(n.Index(i))
	}
	e.depth--
	e.newline()
	e.w.RawByte(']')
}

func (e *encoder) object(n *node.Node) {
	keys := n.Keys()
	if len(keys) == 0 {
		e.w.RawString("{}")
		return
	}
	if e.cfg.sortKeys {
		slices.Sort(keys)
	}

	e.w.RawByte('{')
	e.depth++
	for i, key := range keys {
		if i > 0 {
			e.w.RawByte(',')
		}
		e.newline()
		e.w.String(key)
		if e.cfg.indent != "" {
			e.w.RawString(": ")
		} else {
			e.w.RawByte(':')
		}
		e.value(n.Get(key))
	}
	e.depth--
	e.newline()
	e.w.RawByte('}')
}

func (e *encoder) newline() {
	if e.cfg.indent == "" {
		return
	}

	e.w.RawByte('\n')
	for i := 0; i < e.depth; i++ {
		e.w.RawString(e.cfg.indent)
	}
}
