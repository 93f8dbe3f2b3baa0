package mocat_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/cassite-go/mocat/pkg/mocat"
	"github.com/cassite-go/mocat/pkg/mocat/internal/mobuild"
)

func samplePairs() []mobuild.Pair {
	return []mobuild.Pair{
		{Original: "Open", Translation: "Ouvrir"},
		{Original: "Close", Translation: "Fermer"},
		{Original: "%d file", Translation: "%d fichier"},
		{Original: "%d files", Translation: "%d fichiers"},
		{Original: "menu\x04Open", Translation: "Ouvrir le menu"},
	}
}

func openSample(t *testing.T, magic mobuild.Magic) *mocat.Catalog {
	t.Helper()

	buf := mobuild.Build(samplePairs(), magic)

	cat, err := mocat.OpenMemory(buf)
	require.NoError(t, err)

	t.Cleanup(func() { _ = cat.Close() })

	return cat
}

func TestTranslate_PlainHit(t *testing.T) {
	cat := openSample(t, mobuild.LittleEndian)

	require.Equal(t, "Ouvrir", string(cat.Translate([]byte("Open"))))
	require.Equal(t, "Fermer", string(cat.Translate([]byte("Close"))))
}

func TestTranslate_MissPassthrough(t *testing.T) {
	cat := openSample(t, mobuild.LittleEndian)

	input := []byte("Welcome")
	got := cat.Translate(input)

	// Miss passthrough (TESTABLE PROPERTY 2): result is the exact input,
	// not merely byte-equal to it.
	require.Equal(t, "Welcome", string(got))
	require.Same(t, &input[0], &got[0])
}

func TestTranslateContext(t *testing.T) {
	cat := openSample(t, mobuild.LittleEndian)

	require.Equal(t, "Ouvrir le menu",
		string(cat.TranslateContext([]byte("menu"), []byte("Open"), nil, 1)))

	// Context miss falls back to the bare singular.
	require.Equal(t, "Ouvrir",
		string(cat.TranslateContext([]byte("nonexistent"), []byte("Open"), nil, 1)))
}

func TestTranslateContext_Plural(t *testing.T) {
	cat := openSample(t, mobuild.LittleEndian)

	require.Equal(t, "%d fichiers",
		string(cat.TranslateContext(nil, []byte("%d file"), []byte("%d files"), 5)))
	require.Equal(t, "%d fichier",
		string(cat.TranslateContext(nil, []byte("%d file"), []byte("%d files"), 1)))
}

func TestRoundTripIdentity(t *testing.T) {
	pairs := samplePairs()
	cat := openSample(t, mobuild.LittleEndian)

	for _, p := range pairs {
		got := cat.Translate([]byte(p.Original))
		require.Equal(t, p.Translation, string(got))
	}
}

func TestEndiannessEquivalence(t *testing.T) {
	le := openSample(t, mobuild.LittleEndian)
	be := openSample(t, mobuild.BigEndian)

	for _, p := range samplePairs() {
		gotLE := cmp.Diff(string(le.Translate([]byte(p.Original))), p.Translation)
		gotBE := cmp.Diff(string(be.Translate([]byte(p.Original))), p.Translation)

		require.Empty(t, gotLE)
		require.Empty(t, gotBE)
	}
}

func TestStringCountAndSearchMethod(t *testing.T) {
	cat := openSample(t, mobuild.LittleEndian)

	require.Equal(t, uint32(len(samplePairs())), cat.StringCount())
	require.Contains(t, []string{"LINEAR", "BINARY", "HASH"}, cat.SearchMethod())
}

func TestOpenMemory_RejectsBadMagic(t *testing.T) {
	buf := mobuild.Build(samplePairs(), mobuild.LittleEndian)
	buf[0] = 0xff

	_, err := mocat.OpenMemory(buf)
	require.ErrorIs(t, err, mocat.ErrInvalidFormat)
}

func TestOpen_FileNotFound(t *testing.T) {
	_, err := mocat.Open("/nonexistent/path/does-not-exist.mo")
	require.ErrorIs(t, err, mocat.ErrFileNotFound)
}

func TestOpenMemory_NilRejected(t *testing.T) {
	_, err := mocat.OpenMemory(nil)
	require.ErrorIs(t, err, mocat.ErrInvalidArgs)
}

func TestCacheDoesNotChangeResults(t *testing.T) {
	cat := openSample(t, mobuild.LittleEndian)

	literal := []byte("Open")
	for range 10000 {
		require.Equal(t, "Ouvrir", string(cat.Translate(literal)))
	}
}

func TestStatsCacheHitRate(t *testing.T) {
	if !mocat.StatsEnabled() {
		t.Skip("built without mocat_stats")
	}

	cat := openSample(t, mobuild.LittleEndian)

	literal := []byte("Open")
	for range 10000 {
		cat.Translate(literal)
	}

	stats := cat.GetStats()
	require.EqualValues(t, 9999, stats.CacheHits)
	require.EqualValues(t, 1, stats.CacheMisses)
}
