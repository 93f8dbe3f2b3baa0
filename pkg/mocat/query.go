package mocat

// ctxSeparator is the context separator byte (U+0004, EOT) gettext uses to
// prefix a disambiguating context onto a key (spec.md glossary).
const ctxSeparator = 0x04

// ctxScratchSize bounds the synthesized "ctx EOT singular" key. A context
// query that would overflow this scratch buffer returns word unchanged,
// per spec.md §4.4 step 1.
const ctxScratchSize = 4096

// translateRaw is the tri-valued internal primitive spec.md §9's open
// question prefers: consult the cache, else search, else report a miss.
// found is false exactly when query has no catalog entry; value is always
// non-nil (query itself on a miss).
func (c *Catalog) translateRaw(query []byte) (value []byte, found bool) {
	c.stats.incLookup()

	translation, slotIdx, hit := c.cache.lookup(query, &c.stats)
	if hit {
		return translation, true
	}

	pairIdx, ok := c.strat.find(query)
	if !ok {
		return query, false
	}

	translation = c.pairs[pairIdx].Translation
	c.cache.fill(slotIdx, query, translation)

	return translation, true
}

// Translate is equivalent to TranslateN(s, len(s)).
func (c *Catalog) Translate(s []byte) []byte {
	v, _ := c.translateRaw(s)

	return v
}

// TranslateN looks up s[:n], consulting the cache before the active
// strategy. On a miss it returns s[:n], a view of s's own backing array
// (spec.md §4.4, §7):
// lookup never errors, branch-free call sites are the defined behavior.
func (c *Catalog) TranslateN(s []byte, n int) []byte {
	v, _ := c.translateRaw(s[:n])

	return v
}

// TranslateContext resolves a context- and plural-qualified query
// (spec.md §4.4):
//
//  1. If ctx is non-empty, look up "ctx EOT singular"; on overflow of the
//     scratch buffer, fall back to singular unchanged.
//  2. On a context-qualified miss, retry with bare singular/plural.
//  3. If plural is non-empty and n != 1, perform the above with plural
//     instead of singular.
//  4. Otherwise resolve against singular.
func (c *Catalog) TranslateContext(ctx, singular, plural []byte, n int) []byte {
	word := singular
	if len(plural) > 0 && n != 1 {
		word = plural
	}

	return c.lookupWithContext(ctx, word)
}

func (c *Catalog) lookupWithContext(ctx, word []byte) []byte {
	if len(ctx) == 0 {
		v, _ := c.translateRaw(word)

		return v
	}

	var scratch [ctxScratchSize]byte

	need := len(ctx) + 1 + len(word)
	if need > ctxScratchSize {
		return word
	}

	n := copy(scratch[:], ctx)
	scratch[n] = ctxSeparator
	n++
	n += copy(scratch[n:], word)

	if v, found := c.translateRaw(scratch[:n]); found {
		return v
	}

	v, _ := c.translateRaw(word)

	return v
}
