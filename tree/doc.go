// Package tree implements whole-tree operations on node documents: deep
// copies, structural merges and deep equality.
package tree
