package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnglishTableIsFlattened(t *testing.T) {
	tr, err := LoadTranslations("en")
	require.NoError(t, err)

	assert.Equal(t, "en", tr.Lang())
	assert.Equal(t, "Welcome", tr.T("sections.hero.title"))
	assert.Equal(t, "Frog", tr.T("npcs.frog.name"))
	assert.Equal(t, "Back to the start.", tr.T("world.respawn.message"))
	assert.True(t, tr.Has("npcs.contact.frog.line3"))
}

func TestMissingKeyFallsBackToKey(t *testing.T) {
	tr := MustLoadTranslations("en")
	assert.Equal(t, "npcs.owl.name", tr.T("npcs.owl.name"))
	assert.Equal(t, "https://example.com", tr.T("https://example.com"))
}

func TestEverySectionHasTitleAndDialogue(t *testing.T) {
	tr := MustLoadTranslations("en")
	pages := map[string]string{
		"hero":     "frog",
		"about":    "ladybug",
		"skills":   "snail",
		"projects": "mouse",
		"contact":  "frog",
	}
	for section, creature := range pages {
		assert.True(t, tr.Has("sections."+section+".title"), section)
		for _, line := range []string{"line1", "line2", "line3"} {
			key := "npcs." + section + "." + creature + "." + line
			assert.True(t, tr.Has(key), key)
		}
	}
}

func TestUnknownLanguage(t *testing.T) {
	_, err := LoadTranslations("xx")
	assert.Error(t, err)
	assert.Error(t, SetLanguage("xx"))
	assert.Panics(t, func() { MustLoadTranslations("xx") })
}

func TestPackageLevelT(t *testing.T) {
	require.NoError(t, SetLanguage(DefaultLanguage))
	assert.Equal(t, "Contact", T("sections.contact.title"))
	assert.Contains(t, Languages(), "en")
}

func TestParseNonStringLeaves(t *testing.T) {
	entries, err := parseTranslations([]byte("a:\n  b: 3\n  c: true\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a.b": "3", "a.c": "true"}, entries)
}

func TestEveryLanguageMatchesDefaultKeys(t *testing.T) {
	want := MustLoadTranslations(DefaultLanguage).Keys()

	for _, lang := range Languages() {
		tr, err := LoadTranslations(lang)
		require.NoError(t, err, lang)
		assert.Equal(t, want, tr.Keys(), "keys of %s", lang)
	}
	assert.Contains(t, Languages(), "es")
}
