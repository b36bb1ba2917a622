package emojidb

import (
	"sort"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/npillmayer/emojione/codepoint"
	"github.com/pkg/errors"
)

// IgnorePattern matches inline markup whose content must never be rewritten:
// paired object, span and italic elements, and the opening tags of object,
// embed, svg, img, div, span, p and a elements.
const IgnorePattern = `<object[^>]*>.*?</object>|<span[^>]*>.*?</span>|<i[^>]*>.*?</i>|<(?:object|embed|svg|img|div|span|p|a)[^>]*>`

// ASCII emoticons must be preceded by white space or the start of the text,
// and followed by white space, the end of the text or one of ! , .
const (
	asciiLookbehind = `(?<=\s|^)`
	asciiLookahead  = `(?=\s|$|[!,\.])`
)

// ASCIIPattern returns the alternation of all ASCII aliases, bounded as
// described for asciiLookbehind and asciiLookahead. Longer aliases are tried
// first. An empty alias list yields an empty pattern.
func ASCIIPattern(aliases []string) string {
	if len(aliases) == 0 {
		return ""
	}
	sorted := make([]string, len(aliases))
	copy(sorted, aliases)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})
	return asciiLookbehind + "(" + escapeAll(sorted) + ")" + asciiLookahead
}

// ShortnamePattern returns the alternation of all shortnames.
// Shortnames are delimited by colons and never contain one, so no shortname
// is a prefix of another and their order does not matter.
func ShortnamePattern(shortnames []string) string {
	if len(shortnames) == 0 {
		return ""
	}
	sorted := make([]string, len(shortnames))
	copy(sorted, shortnames)
	sort.Strings(sorted)
	return "(" + escapeAll(sorted) + ")"
}

// UnicodePattern returns the alternation of code point sequences, each
// written as UTF-16 escapes. keys must be ordered longest-first.
func UnicodePattern(keys []string) (string, error) {
	if len(keys) == 0 {
		return "", nil
	}
	if err := CheckLongestFirst(keys); err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteByte('(')
	for i, key := range keys {
		esc, err := codepoint.ToSurrogateEscapeString(key)
		if err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(esc)
	}
	b.WriteByte(')')
	return b.String(), nil
}

func escapeAll(literals []string) string {
	var b strings.Builder
	for i, lit := range literals {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(regexp2.Escape(lit))
	}
	return b.String()
}

// SortLongestFirst orders code point keys by descending UTF-16 length, keys
// of equal length in ascending order.
func SortLongestFirst(keys []string) error {
	lengths := make(map[string]int, len(keys))
	for _, key := range keys {
		n, err := codepoint.UnitLen(key)
		if err != nil {
			return err
		}
		lengths[key] = n
	}
	sort.Slice(keys, func(i, j int) bool {
		li, lj := lengths[keys[i]], lengths[keys[j]]
		if li != lj {
			return li > lj
		}
		return keys[i] < keys[j]
	})
	return nil
}

// CheckLongestFirst verifies that keys are ordered by descending UTF-16 length.
// If this does not hold, a sequence may be shadowed by one of its prefixes.
func CheckLongestFirst(keys []string) error {
	prev := -1
	for i, key := range keys {
		n, err := codepoint.UnitLen(key)
		if err != nil {
			return err
		}
		if prev >= 0 && n > prev {
			return errors.Errorf("unicode alternative %q (#%d, length %d) follows a shorter one (length %d)",
				key, i, n, prev)
		}
		prev = n
	}
	return nil
}
