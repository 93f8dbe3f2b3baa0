package mocat

// strategy is the shared shape of the three mutually exclusive search
// implementations (spec.md §4.2). Exactly one is compiled into any given
// build, selected by the mocat_linear / mocat_binary build tags; the hash
// strategy (strategy_hash.go) is the default, untagged fallback.
type strategy interface {
	// find returns the pair index matching query, or false if absent.
	find(query []byte) (int, bool)

	// name identifies the active strategy for search_method().
	name() string
}

// compareByLenThenBytes implements the compound key ordering used by both
// the binary and hash strategies: length first, then lexicographic bytes.
// Returns <0, 0, >0 like bytes.Compare.
func compareByLenThenBytes(a, b []byte) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}

		return 1
	}

	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}

			return 1
		}
	}

	return 0
}

// djb2 is the multiplicative string hash used by the hash strategy and the
// hash-mode query cache: h := 5381; h := h*33 + b for every byte, wrapping
// unsigned 32-bit arithmetic.
func djb2(b []byte) uint32 {
	h := uint32(5381)

	for _, c := range b {
		h = h*33 + uint32(c)
	}

	return h
}
