//go:build !mocat_linear && !mocat_binary

package mocat

import "unsafe"

// cacheKeyFor computes the direct-mapped cache key for hash mode: both the
// query's pointer identity and its djb2 hash participate in the slot hit
// check (spec.md §4.3), even though only the hash selects the slot index.
func cacheKeyFor(query []byte) (ptr uintptr, hash uint32) {
	return uintptr(unsafe.Pointer(unsafe.SliceData(query))), djb2(query)
}

// slotIndexFor selects the cache slot: hash-keyed in this mode.
func slotIndexFor(_ uintptr, hash uint32) int {
	return int(hash & 63)
}
