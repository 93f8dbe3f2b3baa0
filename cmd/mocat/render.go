package main

import (
	"github.com/cassite-go/mocat/internal/transcode"
)

// renderText converts a catalog byte string to a displayable string.
// mocat itself never assumes catalog payloads are UTF-8 (spec.md treats
// them as opaque byte strings); dump is the only place that renders them
// as text (info only counts invalid pairs), so it checks transcode.Valid
// first and falls back to transcode.Codepoints' lossy but
// always-valid-UTF-8 rendering for
// anything else rather than passing raw bytes through string().
func renderText(b []byte) string {
	if transcode.Valid(b) {
		return string(b)
	}

	return string(transcode.Codepoints(b))
}
