package emojione

import (
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dlclark/regexp2"
	"github.com/npillmayer/emojione/codepoint"
	"github.com/npillmayer/emojione/emojidb"
	"github.com/pkg/errors"
)

// Group names of the combined pattern, in order of precedence.
const (
	groupExcluded  = "x"
	groupUnicode   = "u"
	groupShortname = "s"
	groupASCII     = "a"
)

type compiledSlot struct {
	once sync.Once
	re   *regexp2.Regexp
	err  error
}

// regexpBackend matches emoji with .NET-style regular expressions, which
// provide the lookbehind needed for ASCII emoticons.
//
// One combined pattern is compiled per kind set, on first use.
type regexpBackend struct {
	ignore, unicode, shortname, ascii string
	stats                             matcherStats
	compiled                          atomic.Int32
	slots                             [kindSetCount]compiledSlot
}

func newRegexpBackend(m *emojidb.Manifest) (*regexpBackend, error) {
	ascii, ignore, shortname, unicode, err := m.Patterns()
	if err != nil {
		return nil, err
	}
	rb := &regexpBackend{
		ignore:    ignore,
		unicode:   decodeSurrogateEscapes(unicode),
		shortname: shortname,
		ascii:     ascii,
		stats: matcherStats{
			Backend:    "regexp2",
			ASCII:      len(m.ASCII),
			Shortnames: len(m.Shortnames),
			Unicode:    len(m.UnicodeOrder),
		},
	}
	// the full set is used by Tokenize and catches broken patterns early
	if _, err = rb.matcher(setAll); err != nil {
		return nil, err
	}
	return rb, nil
}

func (rb *regexpBackend) Stats() matcherStats {
	stats := rb.stats
	stats.Compiled = int(rb.compiled.Load())
	return stats
}

// matcher returns the combined pattern for set, compiling it if necessary.
func (rb *regexpBackend) matcher(set kindSet) (*regexp2.Regexp, error) {
	assert(set > 0 && int(set) < kindSetCount, "invalid emoji kind set")
	slot := &rb.slots[set]
	slot.once.Do(func() {
		pattern := rb.combine(set)
		slot.re, slot.err = regexp2.Compile(pattern, regexp2.None)
		if slot.err != nil {
			slot.err = errors.Wrapf(slot.err, "cannot compile emoji pattern for kind set %d", set)
			return
		}
		n := rb.compiled.Add(1)
		tracer().Debugf("compiled emoji pattern for kind set %d (%d of %d)", set, n, kindSetCount-1)
	})
	return slot.re, slot.err
}

// combine builds (?<x>IGNORE)|(?<u>UNICODE)|(?<s>SHORTNAME)|(?<a>ASCII),
// leaving out kinds not in set and empty patterns.
func (rb *regexpBackend) combine(set kindSet) string {
	var alts []string
	add := func(group, pattern string) {
		if pattern != "" {
			alts = append(alts, "(?<"+group+">"+pattern+")")
		}
	}
	add(groupExcluded, rb.ignore)
	if set.has(setUnicode) {
		add(groupUnicode, rb.unicode)
	}
	if set.has(setShortname) {
		add(groupShortname, rb.shortname)
	}
	if set.has(setASCII) {
		add(groupASCII, rb.ascii)
	}
	return strings.Join(alts, "|")
}

func (rb *regexpBackend) Find(text *codepoint.Text, set kindSet) ([]span, error) {
	if text.Len() == 0 {
		return nil, nil
	}
	re, err := rb.matcher(set)
	if err != nil {
		return nil, err
	}
	var spans []span
	m, err := re.FindRunesMatch(text.Runes())
	for m != nil && err == nil {
		spans = append(spans, span{
			kind:  matchKind(m),
			start: m.Index,
			end:   m.Index + m.Length,
		})
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		return spans, errors.Wrap(err, "emoji matching failed")
	}
	return spans, nil
}

func matchKind(m *regexp2.Match) TokenKind {
	participated := func(name string) bool {
		g := m.GroupByName(name)
		return g != nil && len(g.Captures) > 0
	}
	switch {
	case participated(groupExcluded):
		return Excluded
	case participated(groupUnicode):
		return Unicode
	case participated(groupShortname):
		return Shortname
	case participated(groupASCII):
		return ASCII
	}
	return Literal
}

// decodeSurrogateEscapes replaces every escaped surrogate pair like
// \uD83D\uDE00 in a pattern by the character it encodes. Text is matched by
// code point, so a pattern must not spell characters as pairs of code units.
func decodeSurrogateEscapes(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern))
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '\\' || i+1 >= len(pattern) {
			b.WriteByte(pattern[i])
			continue
		}
		if hi, ok := escapedUnit(pattern, i); ok && hi >= 0xD800 && hi < 0xDC00 {
			if lo, ok := escapedUnit(pattern, i+6); ok && lo >= 0xDC00 && lo < 0xE000 {
				r, _ := codepoint.FromUTF16([]uint16{uint16(hi), uint16(lo)})
				if s, err := codepoint.ToUnicode(r); err == nil {
					b.WriteString(s)
					i += 11
					continue
				}
			}
		}
		b.WriteByte(pattern[i]) // keep escape sequences like \\ intact
		b.WriteByte(pattern[i+1])
		i++
	}
	return b.String()
}

// escapedUnit reads an escape \uXXXX at position i of pattern.
func escapedUnit(pattern string, i int) (uint64, bool) {
	if i+6 > len(pattern) || pattern[i] != '\\' || pattern[i+1] != 'u' {
		return 0, false
	}
	u, err := strconv.ParseUint(pattern[i+2:i+6], 16, 16)
	return u, err == nil
}
