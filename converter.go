package emojione

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/npillmayer/emojione/codepoint"
	"github.com/npillmayer/emojione/emojidb"
	"github.com/pkg/errors"
)

// Converter rewrites emoji in text. A Converter is immutable and may be
// shared between goroutines.
type Converter struct {
	tables     *emojidb.Tables
	backend    matchBackend
	config     Config
	Identifier string // identifies the emoji data
}

// New creates a converter for the emoji data of a manifest.
// Empty fields of config are set to DefaultImagePath and DefaultSize.
func New(m *emojidb.Manifest, config Config) (*Converter, error) {
	if m == nil {
		return nil, errors.New("emoji manifest is nil")
	}
	tables, err := emojidb.NewTables(m)
	if err != nil {
		return nil, err
	}
	backend, err := newRegexpBackend(m)
	if err != nil {
		return nil, errors.Wrapf(err, "emoji data %q", m.Name)
	}
	c := &Converter{
		tables:     tables,
		backend:    backend,
		config:     config.withDefaults(),
		Identifier: "emoji: " + m.Name,
	}
	stats := c.backend.Stats()
	tracer().Infof("emoji matcher stats backend=%s emoji=%s ascii=%s shortnames=%s unicode=%s",
		stats.Backend, humanize.Comma(int64(tables.Len())), humanize.Comma(int64(stats.ASCII)),
		humanize.Comma(int64(stats.Shortnames)), humanize.Comma(int64(stats.Unicode)))
	return c, nil
}

// Load compiles emoji records from a streaming, format-agnostic source and
// creates a converter for them.
//
// File format parsing is intentionally outside the base package. Use adapters
// like package emojidb/jsondb to parse concrete formats and feed this API.
func Load(name string, reader emojidb.RecordReader, config Config) (*Converter, error) {
	m, err := emojidb.Compile(name, reader)
	if err != nil {
		return nil, err
	}
	return New(m, config)
}

// WithConfig returns a converter sharing the emoji data of c, rendering with
// a different configuration.
func (c *Converter) WithConfig(config Config) *Converter {
	return &Converter{
		tables:     c.tables,
		backend:    c.backend,
		config:     config.withDefaults(),
		Identifier: c.Identifier,
	}
}

// Config returns the rendering configuration of c.
func (c *Converter) Config() Config {
	return c.config
}

// Tables returns the lookup tables of c.
func (c *Converter) Tables() *emojidb.Tables {
	return c.tables
}

// MatcherStats reports the size of the emoji matcher.
func (c *Converter) MatcherStats() (backend string, ascii, shortnames, unicode, compiled int) {
	if c == nil || c.backend == nil {
		return "", 0, 0, 0, 0
	}
	stats := c.backend.Stats()
	return stats.Backend, stats.ASCII, stats.Shortnames, stats.Unicode, stats.Compiled
}

// replace rewrites the emoji tokens of s with fn. Tokens fn fails for are
// copied unchanged.
func (c *Converter) replace(s string, set kindSet, fn func(tok Token) (string, error)) string {
	tokens := c.tokenize(s, set)
	var b strings.Builder
	b.Grow(len(s))
	for _, tok := range tokens {
		if tok.Kind == Literal || tok.Kind == Excluded {
			b.WriteString(tok.Text)
			continue
		}
		out, err := fn(tok)
		if err != nil {
			tracer().Errorf("cannot convert %s %q: %v", tok.Kind, tok.Text, err)
			out = tok.Text
		}
		b.WriteString(out)
	}
	return b.String()
}

// ASCIIToUnicode replaces ASCII emoticons by unicode emoji.
//
//	"Hello :)" => "Hello 🙂"
//
// Emoticons are recognized only if preceded by white space or the start of
// the text, and followed by white space, the end of the text, '!', ',' or '.'.
func (c *Converter) ASCIIToUnicode(s string) string {
	return c.replace(s, setASCII, func(tok Token) (string, error) {
		return c.unicode(tok.Base)
	})
}

// ShortnameToUnicode replaces shortnames by unicode emoji.
//
//	"Hello :smile:" => "Hello 😄"
func (c *Converter) ShortnameToUnicode(s string) string {
	return c.replace(s, setShortname, func(tok Token) (string, error) {
		return c.unicode(tok.Base)
	})
}

// ShortnameToImage replaces shortnames by emoji images.
// Options WithUnicodeAlt and WithSprite apply.
func (c *Converter) ShortnameToImage(s string, opts ...Option) string {
	o := collect(opts)
	return c.replace(s, setShortname, func(tok Token) (string, error) {
		return c.markup(tok.Base, o)
	})
}

// ShortnameToASCII replaces shortnames by their primary ASCII emoticon.
// Shortnames of emoji without an emoticon are left unchanged.
//
//	":smiley: :snail:" => ":D :snail:"
func (c *Converter) ShortnameToASCII(s string) string {
	return c.replace(s, setShortname, func(tok Token) (string, error) {
		if meta, ok := c.tables.Meta(tok.Base); ok && meta.ASCII != "" {
			return meta.ASCII, nil
		}
		return tok.Text, nil
	})
}

// ToShort replaces unicode emoji by their canonical shortname. Alternate
// code point sequences and skin tone variants resolve to their own entries.
// Option WithASCII applies.
//
//	"Hello 😄" => "Hello :smile:"
func (c *Converter) ToShort(s string, opts ...Option) string {
	o := collect(opts)
	set := setUnicode
	if o.ascii {
		set |= setASCII
	}
	return c.replace(s, set, func(tok Token) (string, error) {
		return c.shortname(tok.Base)
	})
}

// ToImage replaces unicode emoji and shortnames by emoji images.
// Options WithASCII, WithUnicodeAlt and WithSprite apply.
func (c *Converter) ToImage(s string, opts ...Option) string {
	o := collect(opts)
	set := setUnicode | setShortname
	if o.ascii {
		set |= setASCII
	}
	return c.replace(s, set, func(tok Token) (string, error) {
		return c.markup(tok.Base, o)
	})
}

// UnifyUnicode replaces shortnames by unicode emoji, leaving everything else
// unchanged. Option WithASCII applies.
//
//	"😄 :smile: :)" => "😄 😄 :)"
func (c *Converter) UnifyUnicode(s string, opts ...Option) string {
	o := collect(opts)
	set := setShortname
	if o.ascii {
		set |= setASCII
	}
	return c.replace(s, set, func(tok Token) (string, error) {
		return c.unicode(tok.Base)
	})
}

// ToCodePoint returns the code point key of a unicode sequence.
//
//	"😀" => "1f600"
func ToCodePoint(s string) (string, error) {
	return codepoint.ToCodePoint(s)
}

// ToUnicode returns the unicode sequence of a code point key.
//
//	"1f600" => "😀"
func ToUnicode(key string) (string, error) {
	return codepoint.ToUnicode(key)
}
