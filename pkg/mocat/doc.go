// Package mocat parses a GNU gettext .mo binary translation catalog once
// and answers translation queries against it with low, allocation-free
// latency.
//
// # Basic usage
//
//	cat, err := mocat.Open("/usr/share/locale/fr/LC_MESSAGES/app.mo")
//	if err != nil {
//	    // handle ErrFileNotFound / ErrInvalidFormat / ...
//	}
//	defer cat.Close()
//
//	greeting := cat.Translate([]byte("Open"))
//
// # Search strategy
//
// Exactly one of three search strategies is compiled into a given build,
// selected by build tag:
//
//	go build -tags mocat_linear   # linear scan
//	go build -tags mocat_binary   # sorted binary search
//	go build                      # hash table (default)
//
// Add -tags mocat_stats to either of the above to compile in lookup
// counters, retrievable via Catalog.GetStats.
//
// # Concurrency
//
// A Catalog is safe to query concurrently from multiple readers only when
// built with mocat_stats disabled and a single catalog instance is not
// shared across goroutines that also race on the cache; the backing pair
// index, hash table, and mmap'd buffer are read-only after Open/OpenMemory
// return, so distinct Catalog instances never need coordination.
package mocat
