package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given encoded polyline string.
func ID(encoded string) uint64 {
	return xxhash.Sum64String(encoded)
}

// Sum computes the xxHash64 of the given payload bytes.
func Sum(payload []byte) uint64 {
	return xxhash.Sum64(payload)
}
