package mocat

// Stats holds monotonically increasing lookup counters (spec.md §4.5).
// The struct shape is stable across builds; statsEnabled (set by the
// mocat_stats build tag) gates whether the counters actually increment, so
// generic code can read a Catalog's Stats regardless of which build
// produced it.
type Stats struct {
	TotalLookups   uint64
	CacheHits      uint64
	CacheMisses    uint64
	HashCollisions uint64
	Comparisons    uint64
}

func (s *Stats) incLookup() {
	if statsEnabled {
		s.TotalLookups++
	}
}

func (s *Stats) hit() {
	if statsEnabled {
		s.CacheHits++
	}
}

func (s *Stats) miss() {
	if statsEnabled {
		s.CacheMisses++
	}
}

func (s *Stats) incComparisons(n int) {
	if statsEnabled {
		s.Comparisons += uint64(n)
	}
}

func (s *Stats) incCollisions(n int) {
	if statsEnabled {
		s.HashCollisions += uint64(n)
	}
}

// snapshot returns a copy of the current counters.
func (s *Stats) snapshot() Stats { return *s }
