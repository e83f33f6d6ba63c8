package node

// Iterator is a forward-only, single-pass cursor over the children of an
// Array or the entries of a Map.
//
// Mutating the container while an Iterator is in use is not supported; the
// results of Next are then undefined.
type Iterator struct {
	items []*Node
	pos   int
	next  *entry
	isMap bool
}

// Iter creates a cursor over the children of n. It returns nil when n is
// absent or not a container.
func Iter(n *Node) *Iterator {
	if a := n.asArray(); a != nil {
		return &Iterator{items: a.items}
	}
	if m := n.asMap(); m != nil {
		return &Iterator{next: m.entries.head, isMap: true}
	}

	return nil
}

// Next advances the cursor.
//
// For a Map it returns the next key and value in enumeration order; for an
// Array it returns an empty key and the next element. After the last child,
// and on every later call, ok is false.
func (it *Iterator) Next() (key string, value *Node, ok bool) {
	if it == nil {
		return "", nil, false
	}

	if it.isMap {
		e := it.next
		if e == nil {
			return "", nil, false
		}
		it.next = e.next

		return e.key, e.value, true
	}

	if it.pos >= len(it.items) {
		return "", nil, false
	}
	value = it.items[it.pos]
	it.pos++

	return "", value, true
}
