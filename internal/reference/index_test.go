package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the reference index:
// - The built-in catalog covers the functions the hint detectors mention
// - Exact-name lookup is case-insensitive and bypasses scoring
// - An exact name query leads the search results
// - Free-text queries hit summaries (e.g. "non-blocking" finds millis)
// - Limits are honored

func newIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := NewIndex()
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })
	return idx
}

func TestEntries_CoverDetectorVocabulary(t *testing.T) {
	t.Parallel()

	names := map[string]bool{}
	for _, e := range Entries() {
		names[e.Name] = true
	}

	for _, required := range []string{
		"pinMode", "digitalWrite", "delay", "millis",
		"Serial.begin", "LED_BUILTIN", "PROGMEM", "String",
	} {
		assert.True(t, names[required], "catalog missing %s", required)
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	t.Parallel()

	idx := newIndex(t)

	e, ok := idx.Lookup("pinmode")
	require.True(t, ok)
	assert.Equal(t, "pinMode", e.Name)

	_, ok = idx.Lookup("definitelyNotAnAPI")
	assert.False(t, ok)
}

func TestSearch_ExactNameLeads(t *testing.T) {
	t.Parallel()

	idx := newIndex(t)

	results, err := idx.Search("millis", 5)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "millis", results[0].Entry.Name)
}

func TestSearch_FreeText(t *testing.T) {
	t.Parallel()

	idx := newIndex(t)

	results, err := idx.Search("non-blocking timing", 10)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	found := false
	for _, r := range results {
		if r.Entry.Name == "millis" {
			found = true
		}
	}
	assert.True(t, found, "expected millis among timing results")
}

func TestSearch_LimitHonored(t *testing.T) {
	t.Parallel()

	idx := newIndex(t)

	results, err := idx.Search("pin", 2)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(results), 2)
}
