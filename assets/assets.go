// Package assets embeds the game's non-code resources: the translation
// tables and the Kage shaders.
package assets

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultLanguage is used when no language has been selected.
const DefaultLanguage = "en"

var (
	//go:embed i18n/*.yaml
	i18nFS embed.FS

	mu      sync.RWMutex
	current *Translations
)

// Translations is a flat key -> text table. Keys are the dotted paths of
// the nested yaml file, e.g. "sections.hero.title".
type Translations struct {
	lang    string
	entries map[string]string
}

// LoadTranslations parses the embedded table for lang.
func LoadTranslations(lang string) (*Translations, error) {
	data, err := i18nFS.ReadFile(path.Join("i18n", lang+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("read translations %q: %w", lang, err)
	}
	entries, err := parseTranslations(data)
	if err != nil {
		return nil, fmt.Errorf("parse translations %q: %w", lang, err)
	}
	return &Translations{lang: lang, entries: entries}, nil
}

func MustLoadTranslations(lang string) *Translations {
	t, err := LoadTranslations(lang)
	if err != nil {
		panic(err)
	}
	return t
}

func parseTranslations(data []byte) (map[string]string, error) {
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	entries := make(map[string]string)
	flatten("", tree, entries)
	return entries, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case string:
			out[key] = val
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

func (t *Translations) Lang() string { return t.lang }

// T returns the text for key, or the key itself when it is missing so an
// untranslated string is visible on screen instead of blank.
func (t *Translations) T(key string) string {
	if s, ok := t.entries[key]; ok {
		return s
	}
	return key
}

func (t *Translations) Has(key string) bool {
	_, ok := t.entries[key]
	return ok
}

// Keys lists every key in the table, sorted.
func (t *Translations) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Languages lists the embedded translation tables.
func Languages() []string {
	files, err := i18nFS.ReadDir("i18n")
	if err != nil {
		return nil
	}
	var langs []string
	for _, f := range files {
		if name, ok := strings.CutSuffix(f.Name(), ".yaml"); ok {
			langs = append(langs, name)
		}
	}
	return langs
}

// SetLanguage switches the table used by T.
func SetLanguage(lang string) error {
	t, err := LoadTranslations(lang)
	if err != nil {
		return err
	}
	mu.Lock()
	current = t
	mu.Unlock()
	return nil
}

// T translates key with the active language, loading DefaultLanguage on
// first use.
func T(key string) string {
	mu.RLock()
	t := current
	mu.RUnlock()

	if t == nil {
		t = MustLoadTranslations(DefaultLanguage)
		mu.Lock()
		if current == nil {
			current = t
		}
		t = current
		mu.Unlock()
	}
	return t.T(key)
}
