package emojione

import (
	"github.com/npillmayer/emojione/codepoint"
)

// TokenKind classifies the tokens of a text.
type TokenKind int8

// Kinds of tokens. Literal text and excluded regions are never rewritten.
const (
	Literal   TokenKind = iota // plain text
	Excluded                   // inline markup, including emoji markup
	ASCII                      // ASCII emoticon, e.g. ":)"
	Shortname                  // shortname, e.g. ":smile:"
	Unicode                    // unicode emoji sequence
)

func (k TokenKind) String() string {
	switch k {
	case Literal:
		return "Literal"
	case Excluded:
		return "Excluded"
	case ASCII:
		return "ASCII"
	case Shortname:
		return "Shortname"
	case Unicode:
		return "Unicode"
	}
	return "TokenKind(?)"
}

func (k TokenKind) set() kindSet {
	switch k {
	case ASCII:
		return setASCII
	case Shortname:
		return setShortname
	case Unicode:
		return setUnicode
	}
	return 0
}

// Token is a span of text. Start and End are byte offsets into the text.
// Base is the base code point of emoji tokens and empty for all other tokens.
type Token struct {
	Kind       TokenKind
	Text       string
	Start, End int
	Base       string
}

// Tokenize splits s into tokens, searching for emoji of the given kinds.
// Without kinds, all kinds of emoji are searched for.
//
// The texts of the tokens concatenate to s. Emoji which do not resolve to
// a known base code point are reported as Literal.
func (c *Converter) Tokenize(s string, kinds ...TokenKind) []Token {
	var set kindSet
	for _, k := range kinds {
		set |= k.set()
	}
	if set == 0 {
		set = setAll
	}
	return c.tokenize(s, set)
}

type tokenizer struct {
	text   *codepoint.Text
	tokens []Token
}

// emit appends the text between code point offsets from and to as a token.
// Adjacent literals are merged.
func (tz *tokenizer) emit(kind TokenKind, from, to int, base string) {
	if from >= to {
		return
	}
	start, end := tz.text.Offset(from), tz.text.Offset(to)
	if kind == Literal && len(tz.tokens) > 0 {
		if last := &tz.tokens[len(tz.tokens)-1]; last.Kind == Literal {
			last.End = end
			last.Text = tz.text.String()[last.Start:end]
			return
		}
	}
	tz.tokens = append(tz.tokens, Token{
		Kind:  kind,
		Text:  tz.text.String()[start:end],
		Start: start,
		End:   end,
		Base:  base,
	})
}

func (c *Converter) tokenize(s string, set kindSet) []Token {
	tz := &tokenizer{text: codepoint.NewText(s)}
	spans, err := c.backend.Find(tz.text, set)
	if err != nil {
		// keep the matches found so far, the rest of the text stays literal
		tracer().Errorf("tokenizing %d bytes of text: %v", len(s), err)
	}
	runes := tz.text.Runes()
	pos := 0
	for _, sp := range spans {
		if sp.start < pos {
			continue // consumed by a preceding token
		}
		tz.emit(Literal, pos, sp.start, "")
		end := sp.end
		switch sp.kind {
		case Excluded:
			tz.emit(Excluded, sp.start, end, "")
		case ASCII:
			base, ok := c.tables.ASCIIBase(tz.text.Slice(sp.start, sp.end))
			tz.emitEmoji(ASCII, sp.start, end, base, ok)
		case Shortname:
			base, ok := c.tables.ShortnameBase(tz.text.Slice(sp.start, sp.end))
			tz.emitEmoji(Shortname, sp.start, end, base, ok)
		case Unicode:
			var base string
			var ok bool
			base, end, ok = c.resolveUnicodeSpan(runes, sp.start, sp.end)
			tz.emitEmoji(Unicode, sp.start, end, base, ok)
		default:
			tz.emit(Literal, sp.start, end, "")
		}
		pos = end
	}
	tz.emit(Literal, pos, len(runes), "")
	return tz.tokens
}

func (tz *tokenizer) emitEmoji(kind TokenKind, from, to int, base string, ok bool) {
	if !ok {
		tracer().Debugf("%s %q does not resolve to an emoji", kind, tz.text.Slice(from, to))
		kind, base = Literal, ""
	}
	tz.emit(kind, from, to, base)
}
