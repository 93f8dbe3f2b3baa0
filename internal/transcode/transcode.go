// Package transcode provides UTF-8 <-> UTF-16 <-> codepoint conversions
// for rendering catalog payloads that aren't already UTF-8.
//
// spec.md §1 scopes the original Unicode transcoding module out as
// "mechanical per-character dispatch... specified by the Unicode standard
// itself." No example repo in this corpus ships a third-party charset
// library for this; the standard library's unicode/utf8 and unicode/utf16
// packages are the idiomatic, corpus-consistent answer to exactly this
// mechanical dispatch, so this package is a thin wrapper rather than a
// hand-rolled decoder (see DESIGN.md for the explicit stdlib
// justification).
package transcode

import (
	"unicode/utf16"
	"unicode/utf8"
)

// Codepoints decodes a UTF-8 byte slice into a slice of runes.
func Codepoints(b []byte) []rune {
	runes := make([]rune, 0, utf8.RuneCount(b))

	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		runes = append(runes, r)
		b = b[size:]
	}

	return runes
}

// UTF16FromUTF8 converts UTF-8 bytes to a UTF-16 code unit slice,
// surrogate-pairing astral codepoints.
func UTF16FromUTF8(b []byte) []uint16 {
	return utf16.Encode(Codepoints(b))
}

// UTF8FromUTF16 converts a UTF-16 code unit slice back to UTF-8 bytes.
func UTF8FromUTF16(units []uint16) []byte {
	runes := utf16.Decode(units)
	buf := make([]byte, 0, len(runes)*utf8.UTFMax)

	var tmp [utf8.UTFMax]byte

	for _, r := range runes {
		n := utf8.EncodeRune(tmp[:], r)
		buf = append(buf, tmp[:n]...)
	}

	return buf
}

// Valid reports whether b is well-formed UTF-8.
func Valid(b []byte) bool {
	return utf8.Valid(b)
}
