package tree

import "github.com/arloliu/pillow/node"

// Equal reports whether a and b are structurally equal: same kinds and
// values, arrays element by element in order, and maps with the same key sets
// and equal values. Map key order is not compared. Two nil trees are equal;
// a nil tree is not equal to a Null node.
func Equal(a, b *node.Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch a.Kind() {
	case node.Null:
		return true
	case node.Boolean:
		return a.BoolValue() == b.BoolValue()
	case node.Integer:
		return a.IntValue() == b.IntValue()
	case node.Double:
		return a.DoubleValue() == b.DoubleValue()
	case node.String:
		as, _ := a.StringValue()
		bs, _ := b.StringValue()
		return as == bs
	case node.Array:
		if a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !Equal(a.Index(i), b.Index(i)) {
				return false
			}
		}

		return true
	case node.Map:
		if a.Len() != b.Len() {
			return false
		}
		for key, av := range a.All() {
			if !Equal(av, b.Get(key)) {
				return false
			}
		}

		return true
	default:
		return false
	}
}
