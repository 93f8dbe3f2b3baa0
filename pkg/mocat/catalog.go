package mocat

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/cassite-go/mocat/internal/diaglog"
)

// Catalog owns a byte buffer holding a loaded .mo file's raw bytes, the
// derived pair index, the active search strategy's backing store, a
// 64-slot result cache, and optional statistics. Immutable after
// construction except for the cache and statistics (spec.md §3).
type Catalog struct {
	buf    []byte
	mmaped bool // true if buf came from Open (mmap), false from OpenMemory

	pairs []StringPair
	strat strategy
	cache queryCache
	stats Stats

	logger *diaglog.Logger
}

// Option configures a Catalog at open time.
type Option func(*catalogOptions)

type catalogOptions struct {
	logger *diaglog.Logger
}

// WithLogger attaches a diagnostic logger. Without this option, Open and
// OpenMemory use the process-wide default logger controlled by
// EnableLogging.
func WithLogger(l *diaglog.Logger) Option {
	return func(o *catalogOptions) { o.logger = l }
}

func resolveOptions(opts []Option) catalogOptions {
	var o catalogOptions
	for _, apply := range opts {
		apply(&o)
	}

	if o.logger == nil {
		o.logger = diaglog.Default()
	}

	return o
}

// build validates buf's header and tables, materializes the pair index and
// active strategy, and returns the assembled Catalog. Shared by Open and
// OpenMemory.
func build(buf []byte, mmaped bool, opts catalogOptions) (*Catalog, error) {
	h, err := parseHeader(buf)
	if err != nil {
		opts.logger.Error("mocat: header parse failed: %v", err)

		return nil, err
	}

	if err := validateTables(buf, h); err != nil {
		opts.logger.Error("mocat: table validation failed: %v", err)

		return nil, err
	}

	c := &Catalog{
		buf:    buf,
		mmaped: mmaped,
		logger: opts.logger,
	}

	c.pairs = buildPairs(buf, h)
	c.strat = newStrategy(&c.pairs, &c.stats)

	opts.logger.Info("mocat: loaded catalog with %d strings using %s strategy", len(c.pairs), c.strat.name())

	return c, nil
}

// StringCount returns the number of string pairs in the catalog.
func (c *Catalog) StringCount() uint32 {
	return uint32(len(c.pairs))
}

// SearchMethod identifies the compiled-in strategy: "LINEAR", "BINARY", or
// "HASH".
func (c *Catalog) SearchMethod() string {
	return c.strat.name()
}

// Pairs returns every original/translation record. Order matches the file
// for linear/hash-strategy builds; the binary strategy resorts the shared
// pair array by (length, bytes) at build time, so its order differs.
// Callers must not retain the returned views past Close.
func (c *Catalog) Pairs() []StringPair {
	return c.pairs
}

// GetStats returns a snapshot of the lookup counters. In builds without the
// mocat_stats tag, all fields are zero.
func (c *Catalog) GetStats() Stats {
	return c.stats.snapshot()
}

// StatsEnabled reports whether this build was compiled with counters
// active (the mocat_stats build tag).
func StatsEnabled() bool { return statsEnabled }

// Close releases the catalog's owned buffer. Idempotent; safe to call on a
// nil Catalog.
func (c *Catalog) Close() error {
	if c == nil || c.buf == nil {
		return nil
	}

	var err error
	if c.mmaped {
		err = unix.Munmap(c.buf)
	}

	c.buf = nil
	c.pairs = nil
	c.strat = nil

	if err != nil {
		return fmt.Errorf("mocat: munmap: %w", err)
	}

	return nil
}
