package emojidb

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/npillmayer/emojione/codepoint"
	"github.com/pkg/errors"
)

// ContractVersion identifies the layout of a Manifest.
const ContractVersion = "1"

// Meta is the metadata of an emoji, keyed by base code point.
type Meta struct {
	Shortname string `json:"shortname"`
	Category  string `json:"category"`
	ASCII     string `json:"ascii,omitempty"` // primary ASCII alias, may be empty
}

// Manifest is the serializable output of Compile and the input of the
// conversion engine. Mappings and patterns are regenerated together.
type Manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`

	ASCIIPattern     string `json:"ascii_pattern"`
	IgnorePattern    string `json:"ignore_pattern"`
	ShortnamePattern string `json:"shortname_pattern"`
	UnicodePattern   string `json:"unicode_pattern"`

	ASCII      map[string]string `json:"ascii"`      // ASCII alias => base
	Shortnames map[string]string `json:"shortnames"` // shortname or alias => base
	Alternates map[string]string `json:"alternates"` // alternate code point => base
	Emoji      map[string]Meta   `json:"emoji"`      // base => metadata

	// UnicodeOrder lists all base and alternate code points, longest first.
	UnicodeOrder []string `json:"unicode_order"`
}

// ReadManifest decodes a JSON manifest and validates it.
func ReadManifest(r io.Reader) (*Manifest, error) {
	m := &Manifest{}
	if err := json.NewDecoder(r).Decode(m); err != nil {
		return nil, errors.Wrap(err, "cannot decode emoji manifest")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// WriteJSON encodes the manifest as JSON.
func (m *Manifest) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return errors.Wrap(enc.Encode(m), "cannot encode emoji manifest")
}

// Validate checks the referential integrity of the mappings and the
// ordering of UnicodeOrder.
func (m *Manifest) Validate() error {
	if m.Version != ContractVersion {
		return errors.Errorf("manifest %q: unsupported contract version %q", m.Name, m.Version)
	}
	for base, meta := range m.Emoji {
		if _, err := codepoint.UnitLen(base); err != nil {
			return errors.Wrapf(err, "manifest %q", m.Name)
		}
		if !isShortname(meta.Shortname) {
			return errors.Errorf("manifest %q: emoji %s has malformed shortname %q", m.Name, base, meta.Shortname)
		}
		if m.Shortnames[meta.Shortname] != base {
			return errors.Errorf("manifest %q: shortname %s does not map back to %s", m.Name, meta.Shortname, base)
		}
	}
	check := func(kind string, mapping map[string]string) error {
		for from, base := range mapping {
			if _, ok := m.Emoji[base]; !ok {
				return errors.Errorf("manifest %q: %s %q refers to unknown emoji %q", m.Name, kind, from, base)
			}
		}
		return nil
	}
	if _, empty := m.ASCII[""]; empty {
		return errors.Errorf("manifest %q: empty ASCII alias", m.Name)
	}
	if err := check("ASCII alias", m.ASCII); err != nil {
		return err
	}
	if err := check("shortname", m.Shortnames); err != nil {
		return err
	}
	if err := check("alternate", m.Alternates); err != nil {
		return err
	}
	if len(m.UnicodeOrder) != len(m.Emoji)+len(m.Alternates) {
		return errors.Errorf("manifest %q: unicode order lists %d sequences, expected %d",
			m.Name, len(m.UnicodeOrder), len(m.Emoji)+len(m.Alternates))
	}
	for _, key := range m.UnicodeOrder {
		_, isBase := m.Emoji[key]
		_, isAlt := m.Alternates[key]
		if !isBase && !isAlt {
			return errors.Errorf("manifest %q: unicode order lists unknown sequence %q", m.Name, key)
		}
	}
	return errors.Wrapf(CheckLongestFirst(m.UnicodeOrder), "manifest %q", m.Name)
}

// Patterns returns the four pattern strings of the manifest. Patterns left
// empty in the manifest are derived from the mappings.
func (m *Manifest) Patterns() (ascii, ignore, shortname, unicode string, err error) {
	ascii, ignore, shortname, unicode = m.ASCIIPattern, m.IgnorePattern, m.ShortnamePattern, m.UnicodePattern
	if ascii == "" {
		ascii = ASCIIPattern(keys(m.ASCII))
	}
	if ignore == "" {
		ignore = IgnorePattern
	}
	if shortname == "" {
		shortname = ShortnamePattern(keys(m.Shortnames))
	}
	if unicode == "" {
		unicode, err = UnicodePattern(m.UnicodeOrder)
	}
	return
}

func keys(mapping map[string]string) []string {
	kk := make([]string, 0, len(mapping))
	for k := range mapping {
		kk = append(kk, k)
	}
	return kk
}

func isShortname(s string) bool {
	return len(s) > 2 && s[0] == ':' && s[len(s)-1] == ':' && !strings.Contains(s[1:len(s)-1], ":")
}
