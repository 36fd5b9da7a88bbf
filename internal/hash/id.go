package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given script name.
func ID(name []byte) uint64 {
	return xxhash.Sum64(name)
}
