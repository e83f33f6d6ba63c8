package codec

import (
	"github.com/arloliu/pillow/internal/hash"
	"github.com/arloliu/pillow/node"
)

// Fingerprint returns the xxHash64 of the compact, sorted-key serialization
// of n. Trees that are structurally equal share a fingerprint regardless of
// the insertion order of their map keys.
func Fingerprint(n *node.Node) uint64 {
	return hash.Sum(encode(n, &MarshalConfig{sortKeys: true}))
}
