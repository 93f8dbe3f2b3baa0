package main

import "github.com/cassite-go/mocat/internal/diaglog"

// defaultLoggingOn turns on the process-wide default logger mocat.Open
// uses when no WithLogger option is supplied, matching spec.md §6's
// enable_logging(bool) entry point.
func defaultLoggingOn() {
	diaglog.EnableLogging(true)
}
