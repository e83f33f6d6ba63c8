package codec

import (
	"bytes"
	"io"

	"github.com/arloliu/pillow/node"
)

// frame is one open container in the builder stack.
type frame struct {
	container *node.Node
	key       string
}

// builder assembles a tree from parser events.
type builder struct {
	root  *node.Node
	stack []frame
}

func (b *builder) handle(ev Event) error {
	switch ev.Kind {
	case EventNull:
		b.attach(node.NewNull())
	case EventBoolean:
		b.attach(node.NewBool(ev.Bool))
	case EventInteger:
		b.attach(node.NewInt(ev.Int))
	case EventDouble:
		b.attach(node.NewDouble(ev.Double))
	case EventString:
		b.attach(node.NewString(ev.Text))
	case EventMapKey:
		b.stack[len(b.stack)-1].key = ev.Text
	case EventMapStart:
		m := node.NewMap()
		b.attach(m)
		b.stack = append(b.stack, frame{container: m})
	case EventArrayStart:
		a := node.NewArray()
		b.attach(a)
		b.stack = append(b.stack, frame{container: a})
	case EventMapEnd, EventArrayEnd:
		b.stack = b.stack[:len(b.stack)-1]
	}

	return nil
}

// attach places n in the innermost open container, or makes it the root.
func (b *builder) attach(n *node.Node) {
	if len(b.stack) == 0 {
		if b.root == nil {
			b.root = n
		}
		return
	}

	top := b.stack[len(b.stack)-1]
	if top.container.Kind() == node.Map {
		top.container.Set(top.key, n)
	} else {
		top.container.PushBack(n)
	}
}

// Parse builds a tree from JSON text.
//
// Empty or whitespace-only input yields (nil, nil). On malformed input the
// part of the tree assembled before the error is returned together with an
// error wrapping errs.ErrSyntax; the partial tree may be nil when the error
// precedes the first value.
//
// Parameters:
//   - data: The JSON text
//
// Returns:
//   - *node.Node: The document root, possibly partial
//   - error: A syntax error, nil on success
func Parse(data []byte) (*node.Node, error) {
	return ParseReader(bytes.NewReader(data))
}

// ParseReader is Parse reading the JSON text from r.
func ParseReader(r io.Reader) (*node.Node, error) {
	var b builder
	err := WalkReader(r, b.handle)

	return b.root, err
}

// FromJSON parses s and returns the resulting tree.
//
// Parse errors are logged at debug level and dropped; the partial tree is
// returned as is. Use Parse to observe the error.
func FromJSON(s string) *node.Node {
	root, err := Parse([]byte(s))
	if err != nil {
		logger.Debugf("parsing JSON document: %v", err)
	}

	return root
}
