package emojione

import (
	"github.com/npillmayer/emojione/codepoint"
	"github.com/npillmayer/emojione/emojidb"
)

// resolveUnicode maps the code point key of a unicode sequence to its base.
//
// Keys unknown to the tables which end in a skin tone modifier are split;
// the head is normalized on its own and combined with the modifier again.
// This resolves e.g. 261d-fe0f-1f3fb to the variant 261d-1f3fb.
func (c *Converter) resolveUnicode(key string) (string, bool) {
	if base, ok := c.tables.Normalize(key); ok {
		return base, true
	}
	head, tone := emojidb.SplitTone(key)
	if tone == 0 {
		return "", false
	}
	headBase, ok := c.tables.Normalize(head)
	if !ok {
		return "", false
	}
	return c.tables.Normalize(headBase + "-" + emojidb.ToneModifier(tone))
}

// resolveUnicodeSpan resolves a unicode match runes[start:end]. If the match
// is directly followed by a skin tone modifier and the tables know the
// variant, the match is extended by the modifier.
func (c *Converter) resolveUnicodeSpan(runes []rune, start, end int) (string, int, bool) {
	key, err := codepoint.FromUnits(runes[start:end])
	if err != nil {
		tracer().Errorf("unicode match at %d: %v", start, err)
		return "", end, false
	}
	base, ok := c.resolveUnicode(key)
	if end < len(runes) {
		if tone := emojidb.ToneOf(runes[end]); tone > 0 && emojidb.ToneOf(runes[end-1]) == 0 {
			variantKey := key + "-" + emojidb.ToneModifier(tone)
			if variant, found := c.resolveUnicode(variantKey); found {
				tracer().Debugf("merged skin tone modifier into %s", variant)
				return variant, end + 1, true
			}
		}
	}
	if !ok {
		names, _ := codepoint.Names(key)
		tracer().Debugf("unicode sequence %s %v is not in the tables", key, names)
	}
	return base, end, ok
}
