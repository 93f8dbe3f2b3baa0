//go:build mocat_linear || mocat_binary

package mocat

import "unsafe"

// cacheKeyFor computes the direct-mapped cache key for linear/binary mode:
// the pointer identity of the query's backing array. hash is unused in
// this mode and always reported as zero.
func cacheKeyFor(query []byte) (ptr uintptr, hash uint32) {
	return uintptr(unsafe.Pointer(unsafe.SliceData(query))), 0
}

// slotIndexFor selects the cache slot: pointer-keyed in this mode.
func slotIndexFor(ptr uintptr, _ uint32) int {
	return int(ptr & 63)
}
