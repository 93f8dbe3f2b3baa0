package mocat

import (
	"encoding/binary"
	"fmt"
)

// GNU MO binary layout constants.
const (
	magicLittleEndian uint32 = 0x950412de
	magicBigEndian    uint32 = 0xde120495

	headerSize = 28 // bytes, fixed

	// Header field offsets (bytes from file start).
	offMagic        = 0x00 // uint32
	offRevision     = 0x04 // uint32, ignored beyond being read
	offNumStrings   = 0x08 // uint32
	offOrigTable    = 0x0C // uint32
	offTransTable   = 0x10 // uint32
	offHashTabSize  = 0x14 // uint32, ignored
	offHashTabStart = 0x18 // uint32, ignored

	descriptorSize = 8 // (length uint32, offset uint32) per table row
)

// header is the parsed, byte-order-resolved fixed header.
type header struct {
	order            binary.ByteOrder
	revision         uint32
	numStrings       uint32
	origTableOffset  uint32
	transTableOffset uint32
	hashTableSize    uint32 // read but never consulted, per spec.md §4.1
	hashTableOffset  uint32
}

// parseHeader reads and validates the fixed 28-byte header, resolving byte
// order from the magic word. It does not yet validate the string tables.
func parseHeader(buf []byte) (header, error) {
	if len(buf) < headerSize {
		return header{}, fmt.Errorf("%w: file shorter than header (%d bytes)", ErrInvalidFormat, len(buf))
	}

	// The magic is read as raw little-endian bytes first; if it doesn't
	// match either known value under that reading, the file is rejected
	// outright (a byte-reversed magic under LE reading is the BE marker).
	rawMagic := binary.LittleEndian.Uint32(buf[offMagic:])

	var order binary.ByteOrder

	switch rawMagic {
	case magicLittleEndian:
		order = binary.LittleEndian
	case magicBigEndian:
		order = binary.BigEndian
	default:
		return header{}, fmt.Errorf("%w: unrecognized magic %#08x", ErrInvalidFormat, rawMagic)
	}

	h := header{
		order:            order,
		revision:         order.Uint32(buf[offRevision:]),
		numStrings:       order.Uint32(buf[offNumStrings:]),
		origTableOffset:  order.Uint32(buf[offOrigTable:]),
		transTableOffset: order.Uint32(buf[offTransTable:]),
		hashTableSize:    order.Uint32(buf[offHashTabSize:]),
		hashTableOffset:  order.Uint32(buf[offHashTabStart:]),
	}

	return h, nil
}

// descriptor is a (length, offset) row from either string table.
type descriptor struct {
	length uint32
	offset uint32
}

// readDescriptor reads the i-th row of a table starting at tableOffset.
func readDescriptor(buf []byte, order binary.ByteOrder, tableOffset uint32, i uint32) (descriptor, error) {
	rowOffset := uint64(tableOffset) + uint64(i)*descriptorSize
	if rowOffset+descriptorSize > uint64(len(buf)) {
		return descriptor{}, fmt.Errorf("%w: descriptor row %d out of bounds", ErrInvalidFormat, i)
	}

	row := buf[rowOffset:]

	return descriptor{
		length: order.Uint32(row[0:4]),
		offset: order.Uint32(row[4:8]),
	}, nil
}

// validateTables checks that both string-descriptor tables lie entirely
// within buf and that every declared (offset, length) pair, plus a trailing
// NUL byte, fits. It does not consult the on-disk hash table.
func validateTables(buf []byte, h header) error {
	n := uint64(h.numStrings)

	origTableEnd := uint64(h.origTableOffset) + n*descriptorSize
	if origTableEnd > uint64(len(buf)) {
		return fmt.Errorf("%w: original string table extends past end of file", ErrInvalidFormat)
	}

	transTableEnd := uint64(h.transTableOffset) + n*descriptorSize
	if transTableEnd > uint64(len(buf)) {
		return fmt.Errorf("%w: translation string table extends past end of file", ErrInvalidFormat)
	}

	for i := uint32(0); i < h.numStrings; i++ {
		orig, err := readDescriptor(buf, h.order, h.origTableOffset, i)
		if err != nil {
			return err
		}

		if err := checkStringFits(buf, orig, "original", i); err != nil {
			return err
		}

		trans, err := readDescriptor(buf, h.order, h.transTableOffset, i)
		if err != nil {
			return err
		}

		if err := checkStringFits(buf, trans, "translation", i); err != nil {
			return err
		}
	}

	return nil
}

// checkStringFits verifies offset+length+1 (trailing NUL) stays within buf.
func checkStringFits(buf []byte, d descriptor, kind string, i uint32) error {
	end := uint64(d.offset) + uint64(d.length) + 1
	if end > uint64(len(buf)) {
		return fmt.Errorf("%w: %s string %d (offset=%d len=%d) escapes buffer",
			ErrInvalidFormat, kind, i, d.offset, d.length)
	}

	return nil
}
