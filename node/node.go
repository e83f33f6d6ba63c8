package node

import (
	"iter"
	"math"
)

// Node is one value in a JSON document tree.
//
// The zero value is not meaningful; build nodes with the New* constructors.
// A nil *Node stands for an absent value and is accepted by every method.
type Node struct {
	parent *Node
	val    payload
}

// payload is the sealed sum of node values. Only the types in this file
// implement it.
type payload interface {
	kind() Kind
}

type (
	nullPayload   struct{}
	boolPayload   bool
	intPayload    int64
	doublePayload float64
	stringPayload string
	arrayPayload  struct{ items []*Node }
	mapPayload    struct{ entries orderedMap }
)

func (nullPayload) kind() Kind { return Null }
func (boolPayload) kind() Kind { return Boolean }
func (intPayload) kind() Kind { return Integer }
func (doublePayload) kind() Kind { return Double }
func (stringPayload) kind() Kind { return String }
func (*arrayPayload) kind() Kind { return Array }
func (*mapPayload) kind() Kind { return Map }

// NewNull creates a Null node.
func NewNull() *Node {
	return &Node{val: nullPayload{}}
}

// NewBool creates a Boolean node.
func NewBool(b bool) *Node {
	return &Node{val: boolPayload(b)}
}

// NewInt creates an Integer node.
func NewInt(i int64) *Node {
	return &Node{val: intPayload(i)}
}

// NewDouble creates a Double node.
func NewDouble(f float64) *Node {
	return &Node{val: doublePayload(f)}
}

// NewString creates a String node holding its own copy of s.
func NewString(s string) *Node {
	return &Node{val: stringPayload(s)}
}

// NewArray creates an empty Array node.
func NewArray() *Node {
	return &Node{val: &arrayPayload{}}
}

// NewMap creates an empty Map node.
func NewMap() *Node {
	return &Node{val: &mapPayload{entries: newOrderedMap()}}
}

// Kind returns the kind of the node. An absent node reports Null.
func (n *Node) Kind() Kind {
	if n == nil || n.val == nil {
		return Null
	}

	return n.val.kind()
}

// IsNull reports whether the node is absent or holds JSON null.
func (n *Node) IsNull() bool {
	return n.Kind() == Null
}

// BoolValue returns the boolean value, or false for any other kind.
func (n *Node) BoolValue() bool {
	if n == nil {
		return false
	}
	b, _ := n.val.(boolPayload)

	return bool(b)
}

// IntValue returns the integer value of the node.
//
// A Double is truncated toward zero and clamped to the int64 range; NaN
// yields 0. Every other kind yields 0.
func (n *Node) IntValue() int64 {
	if n == nil {
		return 0
	}

	switch v := n.val.(type) {
	case intPayload:
		return int64(v)
	case doublePayload:
		return truncate(float64(v))
	default:
		return 0
	}
}

// DoubleValue returns the floating point value of the node.
// An Integer is widened; every other kind yields 0.
func (n *Node) DoubleValue() float64 {
	if n == nil {
		return 0
	}

	switch v := n.val.(type) {
	case doublePayload:
		return float64(v)
	case intPayload:
		return float64(v)
	default:
		return 0
	}
}

// StringValue returns the string value and true, or "" and false when the
// node is absent or not a String.
func (n *Node) StringValue() (string, bool) {
	if n == nil {
		return "", false
	}
	s, ok := n.val.(stringPayload)

	return string(s), ok
}

// Get returns the value stored under key, or nil when the node is not a Map
// or has no such key.
func (n *Node) Get(key string) *Node {
	m := n.asMap()
	if m == nil {
		return nil
	}

	return m.entries.get(key)
}

// Has reports whether the node is a Map containing key.
func (n *Node) Has(key string) bool {
	m := n.asMap()
	return m != nil && m.entries.has(key)
}

// Len returns the number of elements of an Array or entries of a Map.
// Every other kind has length 0.
func (n *Node) Len() int {
	if a := n.asArray(); a != nil {
		return len(a.items)
	}
	if m := n.asMap(); m != nil {
		return m.entries.len()
	}

	return 0
}

// Index returns the i-th element of an Array, or nil when i is out of range
// or the node is not an Array.
func (n *Node) Index(i int) *Node {
	a := n.asArray()
	if a == nil || i < 0 || i >= len(a.items) {
		return nil
	}

	return a.items[i]
}

// Keys returns the keys of a Map in enumeration order, or nil for any other kind.
func (n *Node) Keys() []string {
	m := n.asMap()
	if m == nil {
		return nil
	}

	return m.entries.keys()
}

// Set stores value under key in a Map.
//
// An existing value under key is replaced and detached; the key keeps its
// position. Set is a no-op when n is not a Map, value is nil, or value
// cannot be adopted (it already has a parent, or it is n or one of n's
// ancestors).
func (n *Node) Set(key string, value *Node) {
	m := n.asMap()
	if m == nil || !n.canAdopt(value) {
		return
	}

	value.parent = n
	if old := m.entries.set(key, value); old != nil {
		old.parent = nil
	}
}

// Unset removes key from a Map and detaches its value.
// It is a no-op when n is not a Map or the key is absent.
func (n *Node) Unset(key string) {
	m := n.asMap()
	if m == nil {
		return
	}

	if old := m.entries.remove(key); old != nil {
		old.parent = nil
	}
}

// PushBack appends value to an Array.
// It follows the same adoption rules as Set.
func (n *Node) PushBack(value *Node) {
	a := n.asArray()
	if a == nil || !n.canAdopt(value) {
		return
	}

	value.parent = n
	a.items = append(a.items, value)
}

// PushFront inserts value at the head of an Array.
// It follows the same adoption rules as Set.
func (n *Node) PushFront(value *Node) {
	a := n.asArray()
	if a == nil || !n.canAdopt(value) {
		return
	}

	value.parent = n
	a.items = append(a.items, nil)
	copy(a.items[1:], a.items)
	a.items[0] = value
}

// Remove deletes the first element of an Array that is the same node as
// value, compared by identity, and detaches it. It is a no-op when no
// element matches.
func (n *Node) Remove(value *Node) {
	a := n.asArray()
	if a == nil || value == nil {
		return
	}

	for i, item := range a.items {
		if item != value {
			continue
		}

		copy(a.items[i:], a.items[i+1:])
		a.items[len(a.items)-1] = nil
		a.items = a.items[:len(a.items)-1]
		value.parent = nil

		return
	}
}

// All returns a sequence over the children of a container.
//
// Array elements are yielded with an empty key in element order; Map entries
// are yielded in enumeration order. Other kinds yield nothing. The container
// must not be mutated while the sequence is being consumed.
func (n *Node) All() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		it := Iter(n)
		if it == nil {
			return
		}
		for key, value, ok := it.Next(); ok; key, value, ok = it.Next() {
			if !yield(key, value) {
				return
			}
		}
	}
}

func (n *Node) asArray() *arrayPayload {
	if n == nil {
		return nil
	}
	a, _ := n.val.(*arrayPayload)

	return a
}

func (n *Node) asMap() *mapPayload {
	if n == nil {
		return nil
	}
	m, _ := n.val.(*mapPayload)

	return m
}

// canAdopt reports whether value may become a child of n.
func (n *Node) canAdopt(value *Node) bool {
	if value == nil || value.parent != nil || value == n {
		return false
	}
	// Every ancestor of n has a child, so a childless value cannot be one.
	if value.Len() == 0 {
		return true
	}
	for p := n.parent; p != nil; p = p.parent {
		if p == value {
			return false
		}
	}

	return true
}

func truncate(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}
