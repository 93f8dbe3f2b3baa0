package mocat

// StringPair is a single original/translation record, views into the
// catalog's owned buffer. Lifetime equals the owning Catalog's; callers
// must not retain Original or Translation past Close.
type StringPair struct {
	Original    []byte
	Translation []byte
}

// buildPairs materializes one StringPair per declared string, referencing
// buf directly (no payload copy). Assumes validateTables already succeeded.
func buildPairs(buf []byte, h header) []StringPair {
	pairs := make([]StringPair, h.numStrings)

	for i := uint32(0); i < h.numStrings; i++ {
		// Errors are unreachable here: validateTables already proved every
		// descriptor is well formed for this exact buffer and header.
		orig, _ := readDescriptor(buf, h.order, h.origTableOffset, i)
		trans, _ := readDescriptor(buf, h.order, h.transTableOffset, i)

		pairs[i] = StringPair{
			Original:    buf[orig.offset : orig.offset+orig.length],
			Translation: buf[trans.offset : trans.offset+trans.length],
		}
	}

	return pairs
}
