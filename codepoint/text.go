package codepoint

// Text is a code point view of a Go string.
//
// Offsets into Runes may be mapped back to the original string with Slice,
// which never re-encodes: invalid UTF-8 in the source appears as U+FFFD in
// the view but survives a round trip unchanged.
type Text struct {
	src     string
	runes   []rune
	offsets []int // byte offset of each rune, plus len(src)
}

// NewText creates the code point view of s.
func NewText(s string) *Text {
	t := &Text{
		src:     s,
		runes:   make([]rune, 0, len(s)),
		offsets: make([]int, 0, len(s)+1),
	}
	for i, r := range s {
		t.runes = append(t.runes, r)
		t.offsets = append(t.offsets, i)
	}
	t.offsets = append(t.offsets, len(s))
	return t
}

// String returns the source text.
func (t *Text) String() string { return t.src }

// Runes returns the code points of the text. Clients must not modify them.
func (t *Text) Runes() []rune { return t.runes }

// Len returns the number of code points.
func (t *Text) Len() int { return len(t.runes) }

// Offset returns the byte offset of code point i in the source text.
// Offset(Len()) is the length of the source in bytes.
func (t *Text) Offset(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(t.runes) {
		return len(t.src)
	}
	return t.offsets[i]
}

// Slice returns the source text between code point offsets from and to.
func (t *Text) Slice(from, to int) string {
	return t.src[t.Offset(from):max(t.Offset(from), t.Offset(to))]
}
