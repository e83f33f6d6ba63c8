package tree

import "github.com/arloliu/pillow/node"

// Clone returns a deep copy of n that shares no nodes with it.
// Kinds, values and the order of array elements and map keys are preserved.
// Clone of nil is nil.
func Clone(n *node.Node) *node.Node {
	switch n.Kind() {
	case node.Boolean:
		return node.NewBool(n.BoolValue())
	case node.Integer:
		return node.NewInt(n.IntValue())
	case node.Double:
		return node.NewDouble(n.DoubleValue())
	case node.String:
		s, _ := n.StringValue()
		return node.NewString(s)
	case node.Array:
		out := node.NewArray()
		for _, child := range n.All() {
			out.PushBack(Clone(child))
		}

		return out
	case node.Map:
		out := node.NewMap()
		for key, child := range n.All() {
			out.Set(key, Clone(child))
		}

		return out
	default:
		if n == nil {
			return nil
		}

		return node.NewNull()
	}
}
