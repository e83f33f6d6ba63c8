package hash

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Sum computes the xxHash64 of the given bytes.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Hex formats a hash as a fixed width lowercase hex string.
func Hex(h uint64) string {
	return fmt.Sprintf("%016x", h)
}
