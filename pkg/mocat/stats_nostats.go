//go:build !mocat_stats

package mocat

// statsEnabled reports whether counters are active in this build
// (the mocat_stats build tag).
const statsEnabled = false
