/*
Package suggest completes and searches emoji shortnames, e.g. for the
autocompletion popup of a message composer.

Completion is by prefix and uses a trie over all shortnames, including
alternates. Search is fuzzy and ranks shortnames by match quality.
*/
package suggest

import (
	"sort"
	"strings"

	"github.com/derekparker/trie"
	"github.com/npillmayer/emojione/codepoint"
	"github.com/npillmayer/emojione/emojidb"
	"github.com/sahilm/fuzzy"
)

// Suggestion is an emoji proposed for a shortname fragment.
type Suggestion struct {
	Shortname string // shortname as matched, canonical or alternate
	Base      string // base code point
	Unicode   string
	Category  string
}

// Index holds the shortnames of an emoji table for completion and search.
// An Index is immutable and safe for concurrent use.
type Index struct {
	trie  *trie.Trie
	names shortnames // sorted
}

type shortnames []string

func (s shortnames) Len() int            { return len(s) }
func (s shortnames) String(i int) string { return strings.Trim(s[i], ":") }

// New creates an index over all shortnames of tables.
func New(tables *emojidb.Tables) *Index {
	ix := &Index{trie: trie.New()}
	for _, name := range tables.Shortnames() {
		base, _ := tables.ShortnameBase(name)
		meta, _ := tables.Meta(base)
		unicode, err := codepoint.ToUnicode(base)
		if err != nil {
			continue
		}
		ix.trie.Add(name, Suggestion{
			Shortname: name,
			Base:      base,
			Unicode:   unicode,
			Category:  meta.Category,
		})
		ix.names = append(ix.names, name)
	}
	return ix
}

// Len returns the number of shortnames in the index.
func (ix *Index) Len() int {
	return len(ix.names)
}

// Lookup returns the suggestion for a complete shortname.
func (ix *Index) Lookup(shortname string) (Suggestion, bool) {
	node, ok := ix.trie.Find(shortname)
	if !ok {
		return Suggestion{}, false
	}
	s, ok := node.Meta().(Suggestion)
	return s, ok
}

// Complete returns at most max shortnames starting with prefix, in
// ascending order. The leading colon of prefix is optional.
// max <= 0 means no limit.
func (ix *Index) Complete(prefix string, max int) []Suggestion {
	if !strings.HasPrefix(prefix, ":") {
		prefix = ":" + prefix
	}
	if prefix == ":" {
		return nil
	}
	keys := ix.trie.PrefixSearch(prefix)
	sort.Strings(keys)
	return ix.collect(keys, max)
}

// Search returns at most max shortnames fuzzily matching pattern, best
// matches first. Colons in pattern are ignored.
// max <= 0 means no limit.
func (ix *Index) Search(pattern string, max int) []Suggestion {
	pattern = strings.Trim(pattern, ":")
	if pattern == "" {
		return nil
	}
	matches := fuzzy.FindFrom(pattern, ix.names)
	keys := make([]string, len(matches))
	for i, m := range matches {
		keys[i] = ix.names[m.Index]
	}
	return ix.collect(keys, max)
}

func (ix *Index) collect(keys []string, max int) []Suggestion {
	if max > 0 && len(keys) > max {
		keys = keys[:max]
	}
	suggestions := make([]Suggestion, 0, len(keys))
	for _, key := range keys {
		if s, ok := ix.Lookup(key); ok {
			suggestions = append(suggestions, s)
		}
	}
	return suggestions
}
