package emojidb

import (
	"io"

	"github.com/dustin/go-humanize"
	"github.com/npillmayer/emojione/codepoint"
	"github.com/pkg/errors"
)

// Compile reads all records from reader and compiles them into a validated
// Manifest.
//
// Records for plain ASCII digits, '#' and '*' are skipped: a '2' in running
// text must never turn into an emoji. For every diverse record, skin tone
// variants are synthesized unless the database carries them explicitly.
func Compile(name string, reader RecordReader) (*Manifest, error) {
	b := newBuilder(name)
	var diverse []Record
	for {
		rec, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading emoji records of %q", name)
		}
		if isASCIISymbol(rec.Base) {
			tracer().Debugf("skipping ASCII symbol %s (%s)", rec.Base, rec.Shortname)
			continue
		}
		if err = b.add(rec); err != nil {
			return nil, err
		}
		if rec.Diverse {
			diverse = append(diverse, rec)
		}
	}
	synthesized := 0
	for _, rec := range diverse {
		for _, v := range toneVariants(rec) {
			if b.addVariant(v) {
				synthesized++
			}
		}
	}
	m, err := b.manifest()
	if err != nil {
		return nil, err
	}
	tracer().Infof("compiled %s emoji (%s synthesized skin tones), %s unicode sequences for %q",
		humanize.Comma(int64(len(m.Emoji))), humanize.Comma(int64(synthesized)),
		humanize.Comma(int64(len(m.UnicodeOrder))), name)
	return m, nil
}

func isASCIISymbol(key string) bool {
	if len(key) != 4 || key[:2] != "00" {
		return false
	}
	switch key[2:] {
	case "23", "2a", "30", "31", "32", "33", "34", "35", "36", "37", "38", "39":
		return true
	}
	return false
}

type builder struct {
	m *Manifest
}

func newBuilder(name string) *builder {
	return &builder{m: &Manifest{
		Name:       name,
		Version:    ContractVersion,
		ASCII:      make(map[string]string),
		Shortnames: make(map[string]string),
		Alternates: make(map[string]string),
		Emoji:      make(map[string]Meta),
	}}
}

// add enters a database record, enforcing uniqueness of every key.
func (b *builder) add(rec Record) error {
	m := b.m
	if _, err := codepoint.UnitLen(rec.Base); err != nil {
		return errors.Wrapf(err, "emoji %s", rec.Shortname)
	}
	if !isShortname(rec.Shortname) {
		return errors.Errorf("emoji %s has malformed shortname %q", rec.Base, rec.Shortname)
	}
	if _, dup := m.Emoji[rec.Base]; dup {
		return errors.Errorf("duplicate base code point %s", rec.Base)
	}
	if owner, dup := m.Alternates[rec.Base]; dup {
		return errors.Errorf("base code point %s is already an alternate of %s", rec.Base, owner)
	}
	for _, sn := range append([]string{rec.Shortname}, rec.ShortnameAlternates...) {
		if !isShortname(sn) {
			return errors.Errorf("emoji %s has malformed shortname %q", rec.Base, sn)
		}
		if owner, dup := m.Shortnames[sn]; dup {
			return errors.Errorf("shortname %s of %s already belongs to %s", sn, rec.Base, owner)
		}
	}
	for _, alias := range rec.ASCII {
		if alias == "" {
			return errors.Errorf("emoji %s has an empty ASCII alias", rec.Base)
		}
		if owner, dup := m.ASCII[alias]; dup {
			return errors.Errorf("ASCII alias %q of %s already belongs to %s", alias, rec.Base, owner)
		}
	}
	for _, alt := range rec.Alternates {
		if alt == rec.Base {
			continue
		}
		if _, err := codepoint.UnitLen(alt); err != nil {
			return errors.Wrapf(err, "alternate of emoji %s", rec.Base)
		}
		if owner, dup := m.Alternates[alt]; dup && owner != rec.Base {
			return errors.Errorf("alternate %s of %s already belongs to %s", alt, rec.Base, owner)
		}
		if _, dup := m.Emoji[alt]; dup {
			return errors.Errorf("alternate %s of %s is a base code point", alt, rec.Base)
		}
	}
	b.enter(rec)
	return nil
}

// addVariant enters a synthesized skin tone variant. Variants present in the
// database take precedence; conflicting aliases of a variant are dropped.
func (b *builder) addVariant(v Record) bool {
	m := b.m
	if _, exists := m.Emoji[v.Base]; exists {
		return false
	}
	if _, exists := m.Alternates[v.Base]; exists {
		return false
	}
	if _, exists := m.Shortnames[v.Shortname]; exists {
		tracer().Errorf("cannot synthesize %s: shortname %s is taken", v.Base, v.Shortname)
		return false
	}
	alts := v.ShortnameAlternates[:0:0]
	for _, sn := range v.ShortnameAlternates {
		if _, taken := m.Shortnames[sn]; !taken {
			alts = append(alts, sn)
		}
	}
	v.ShortnameAlternates = alts
	cps := v.Alternates[:0:0]
	for _, alt := range v.Alternates {
		_, isAlt := m.Alternates[alt]
		_, isBase := m.Emoji[alt]
		if !isAlt && !isBase {
			cps = append(cps, alt)
		}
	}
	v.Alternates = cps
	b.enter(v)
	return true
}

func (b *builder) enter(rec Record) {
	m := b.m
	meta := Meta{Shortname: rec.Shortname, Category: rec.Category}
	if len(rec.ASCII) > 0 {
		meta.ASCII = rec.ASCII[0]
	}
	m.Emoji[rec.Base] = meta
	m.Shortnames[rec.Shortname] = rec.Base
	for _, sn := range rec.ShortnameAlternates {
		m.Shortnames[sn] = rec.Base
	}
	for _, alias := range rec.ASCII {
		m.ASCII[alias] = rec.Base
	}
	for _, alt := range rec.Alternates {
		if alt != rec.Base {
			m.Alternates[alt] = rec.Base
		}
	}
}

// manifest orders the unicode sequences, derives the patterns and validates
// the result.
func (b *builder) manifest() (*Manifest, error) {
	m := b.m
	m.UnicodeOrder = make([]string, 0, len(m.Emoji)+len(m.Alternates))
	for base := range m.Emoji {
		m.UnicodeOrder = append(m.UnicodeOrder, base)
	}
	for alt := range m.Alternates {
		m.UnicodeOrder = append(m.UnicodeOrder, alt)
	}
	if err := SortLongestFirst(m.UnicodeOrder); err != nil {
		return nil, err
	}
	var err error
	m.ASCIIPattern = ASCIIPattern(keys(m.ASCII))
	m.IgnorePattern = IgnorePattern
	m.ShortnamePattern = ShortnamePattern(keys(m.Shortnames))
	if m.UnicodePattern, err = UnicodePattern(m.UnicodeOrder); err != nil {
		return nil, err
	}
	if err = m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
