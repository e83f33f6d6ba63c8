// Package node implements the mutable JSON document tree.
//
// A document is a tree of *Node values. Every node carries exactly one Kind:
// Null, Boolean, Integer, Double, String, Array or Map. The kind is derived
// from the payload stored in the node, so a node can never claim to be an
// Integer while holding a string.
//
// # Soft accessors
//
// All accessors are checked projections. Reading through a nil *Node or a
// node of the wrong kind returns a neutral default (0, false, "" or nil)
// instead of failing:
//
//	doc.Get("user").Get("age").IntValue() // 0 when any step is missing
//
// Two numeric coercions apply: IntValue truncates a Double toward zero and
// DoubleValue widens an Integer.
//
// # Ownership
//
// A container exclusively owns its children. Inserting a node transfers it
// into the container; replaced or removed values are detached and become
// free-standing nodes again. A node that already belongs to a container, or
// that is an ancestor of the target container, is rejected by every mutator,
// so a tree can never contain a cycle or a shared subtree.
//
// Map keys enumerate in insertion order. Replacing the value of an existing
// key keeps the key in its original position.
//
// Nodes are not safe for concurrent mutation.
package node
