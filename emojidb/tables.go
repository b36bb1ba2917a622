package emojidb

import (
	"sort"
)

// Tables are the immutable lookup tables of the engine.
// They are safe for concurrent use.
type Tables struct {
	name         string
	ascii        map[string]string
	shortnames   map[string]string
	alternates   map[string]string
	emoji        map[string]Meta
	unicodeOrder []string
}

// NewTables validates m and copies its mappings into frozen tables.
func NewTables(m *Manifest) (*Tables, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	t := &Tables{
		name:         m.Name,
		ascii:        copyMap(m.ASCII),
		shortnames:   copyMap(m.Shortnames),
		alternates:   copyMap(m.Alternates),
		emoji:        make(map[string]Meta, len(m.Emoji)),
		unicodeOrder: make([]string, len(m.UnicodeOrder)),
	}
	for base, meta := range m.Emoji {
		t.emoji[base] = meta
	}
	copy(t.unicodeOrder, m.UnicodeOrder)
	return t, nil
}

func copyMap(m map[string]string) map[string]string {
	c := make(map[string]string, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// Name identifies the data the tables have been built from.
func (t *Tables) Name() string { return t.name }

// Len returns the number of emoji (base code points).
func (t *Tables) Len() int { return len(t.emoji) }

// ASCIIBase returns the base code point for an ASCII alias. Lookup is
// case-sensitive.
func (t *Tables) ASCIIBase(alias string) (string, bool) {
	base, ok := t.ascii[alias]
	return base, ok
}

// ShortnameBase returns the base code point for a shortname or one of its
// alternates.
func (t *Tables) ShortnameBase(shortname string) (string, bool) {
	base, ok := t.shortnames[shortname]
	return base, ok
}

// AlternateBase returns the base code point an alternate code point
// normalizes to.
func (t *Tables) AlternateBase(key string) (string, bool) {
	base, ok := t.alternates[key]
	return base, ok
}

// Normalize returns the base code point for a base or alternate code point.
func (t *Tables) Normalize(key string) (string, bool) {
	if _, ok := t.emoji[key]; ok {
		return key, true
	}
	return t.AlternateBase(key)
}

// Meta returns the metadata of an emoji.
func (t *Tables) Meta(base string) (Meta, bool) {
	meta, ok := t.emoji[base]
	return meta, ok
}

// Shortnames returns all shortnames, including alternates, in ascending order.
func (t *Tables) Shortnames() []string {
	return sortedKeys(t.shortnames)
}

// ASCIIAliases returns all ASCII aliases in ascending order.
func (t *Tables) ASCIIAliases() []string {
	return sortedKeys(t.ascii)
}

// UnicodeOrder returns all base and alternate code points, longest first.
func (t *Tables) UnicodeOrder() []string {
	order := make([]string, len(t.unicodeOrder))
	copy(order, t.unicodeOrder)
	return order
}

// Each calls fn for every emoji in ascending order of base code points,
// until fn returns false.
func (t *Tables) Each(fn func(base string, meta Meta) bool) {
	bases := make([]string, 0, len(t.emoji))
	for base := range t.emoji {
		bases = append(bases, base)
	}
	sort.Strings(bases)
	for _, base := range bases {
		if !fn(base, t.emoji[base]) {
			return
		}
	}
}

func sortedKeys(m map[string]string) []string {
	kk := keys(m)
	sort.Strings(kk)
	return kk
}
