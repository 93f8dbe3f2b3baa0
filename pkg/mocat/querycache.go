package mocat

// cacheSize is the fixed direct-mapped cache width (spec.md §4.3).
const cacheSize = 64

// cacheSlot is a single direct-mapped memo entry. hash is only meaningful
// in hash-strategy builds; it is always zero otherwise and ignored by the
// comparison in lookup.
type cacheSlot struct {
	valid       bool
	ptr         uintptr
	hash        uint32
	translation []byte
}

// queryCache is the fixed 64-slot, no-eviction-policy-beyond-overwrite
// cache shared by all three strategies. A miss never writes the slot;
// misses are only ever resolved by falling through to the active strategy.
type queryCache struct {
	slots [cacheSize]cacheSlot
}

// lookup returns (translation, true) on a hit, recording the hit/miss in
// stats. On a miss it returns the slot index so the caller can fill it
// after a successful strategy search.
func (c *queryCache) lookup(query []byte, stats *Stats) (translation []byte, slotIdx int, hit bool) {
	ptr, hash := cacheKeyFor(query)
	idx := slotIndexFor(ptr, hash)

	slot := c.slots[idx]
	if slot.valid && slot.ptr == ptr && slot.hash == hash {
		stats.hit()

		return slot.translation, idx, true
	}

	stats.miss()

	return nil, idx, false
}

// fill unconditionally overwrites the slot at idx with the new key and
// translation. Only called after a successful strategy search; misses
// never reach here, per spec.md §4.3.
func (c *queryCache) fill(idx int, query []byte, translation []byte) {
	ptr, hash := cacheKeyFor(query)
	c.slots[idx] = cacheSlot{valid: true, ptr: ptr, hash: hash, translation: translation}
}
