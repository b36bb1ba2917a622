package emojione

import "github.com/npillmayer/emojione/codepoint"

// kindSet is a set of emoji token kinds to search for.
type kindSet uint8

const (
	setASCII kindSet = 1 << iota
	setShortname
	setUnicode
	setAll = setASCII | setShortname | setUnicode
)

// kindSetCount is the number of distinct kind sets, including the empty one.
const kindSetCount = int(setAll) + 1

func (set kindSet) has(k kindSet) bool {
	return set&k != 0
}

// span is a match of the backend, in code point offsets of the text.
type span struct {
	kind       TokenKind // Excluded, ASCII, Shortname or Unicode
	start, end int
}

type matcherStats struct {
	Backend    string
	ASCII      int // number of ASCII alternatives
	Shortnames int // number of shortname alternatives
	Unicode    int // number of unicode alternatives
	Compiled   int // number of kind sets compiled so far
}

// matchBackend is the internal backend abstraction for emoji matching.
//
// Find returns the matches of all kinds in set plus all exclusion zones, in
// text order and without overlap. At every position exclusion zones are tried
// first, followed by unicode sequences, shortnames and ASCII emoticons.
type matchBackend interface {
	Find(text *codepoint.Text, set kindSet) ([]span, error)
	Stats() matcherStats
}
