// Package mobuild assembles minimal, well-formed GNU MO byte buffers for
// tests. It exists so pkg/mocat's tests can exercise both byte orders and
// all three search strategies from the same logical fixture data instead
// of checking binary blobs into the repo.
//
// Grounded on the wire layout in spec.md §6 and on the other_examples
// gorilla gettext.WriteMo reference (same table-then-payload shape,
// reimplemented independently for test-only use, not copied).
package mobuild

import "encoding/binary"

// Pair is one original/translation record to bake into a built catalog.
type Pair struct {
	Original    string
	Translation string
}

// Magic selects which of the two header magic words to emit; the byte
// order used to encode every other field matches the magic's own
// endianness per spec.md §4.1.
type Magic int

const (
	LittleEndian Magic = iota
	BigEndian
)

// Build assembles a complete .mo buffer from pairs, in declaration order
// (no sorting — that's the binary strategy's job at load time).
func Build(pairs []Pair, magic Magic) []byte {
	order, magicWord := resolveOrder(magic)

	n := uint32(len(pairs))
	origTableOffset := uint32(28)
	transTableOffset := origTableOffset + n*8

	var payload []byte

	origDescs := make([]uint32, 0, n*2)
	transDescs := make([]uint32, 0, n*2)

	payloadBase := transTableOffset + n*8

	for _, p := range pairs {
		origDescs = append(origDescs, uint32(len(p.Original)), payloadBase+uint32(len(payload)))
		payload = append(payload, p.Original...)
		payload = append(payload, 0)
	}

	for _, p := range pairs {
		transDescs = append(transDescs, uint32(len(p.Translation)), payloadBase+uint32(len(payload)))
		payload = append(payload, p.Translation...)
		payload = append(payload, 0)
	}

	buf := make([]byte, payloadBase+uint32(len(payload)))

	order.PutUint32(buf[0:4], magicWord)
	order.PutUint32(buf[4:8], 0) // revision
	order.PutUint32(buf[8:12], n)
	order.PutUint32(buf[12:16], origTableOffset)
	order.PutUint32(buf[16:20], transTableOffset)
	order.PutUint32(buf[20:24], 0) // on-disk hash table size, ignored by mocat
	order.PutUint32(buf[24:28], 0) // on-disk hash table offset, ignored by mocat

	for i, v := range origDescs {
		order.PutUint32(buf[origTableOffset+uint32(i)*4:], v)
	}

	for i, v := range transDescs {
		order.PutUint32(buf[transTableOffset+uint32(i)*4:], v)
	}

	copy(buf[payloadBase:], payload)

	return buf
}

// canonicalMagic is always used as the logical magic value; only the byte
// order used to write it (and every other header field) changes between
// the two on-disk representations (spec.md §4.1).
const canonicalMagic = 0x950412de

func resolveOrder(magic Magic) (binary.ByteOrder, uint32) {
	if magic == BigEndian {
		return binary.BigEndian, canonicalMagic
	}

	return binary.LittleEndian, canonicalMagic
}
