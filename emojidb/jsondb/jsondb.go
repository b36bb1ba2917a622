/*
Package jsondb reads emoji databases in the format of EmojiOne's emoji.json.

The database is a JSON object keyed by base code point:

	{
	  "1f44d": {
	    "name": "thumbs up",
	    "category": "people",
	    "shortname": ":thumbsup:",
	    "shortname_alternates": [":+1:", ":thumbup:"],
	    "ascii": [],
	    "diversity_base": 1,
	    "code_points": {
	      "base": "1f44d",
	      "fully_qualified": "1f44d",
	      "non_fully_qualified": "1f44d",
	      "output": "1f44d",
	      "default_matches": ["1f44d"],
	      "greedy_matches": ["1f44d"]
	    }
	  },
	  ...
	}

Entries are streamed in file order. Any code point sequence listed under
code_points other than the base becomes an alternate of the base.
*/
package jsondb

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/npillmayer/emojione/emojidb"
	"github.com/pkg/errors"
)

// RecordReader streams emoji records from an emoji.json document.
type RecordReader struct {
	dec     *json.Decoder
	started bool
	done    bool
}

// NewRecordReader creates a record reader for an emoji.json document.
func NewRecordReader(reader io.Reader) *RecordReader {
	return &RecordReader{dec: json.NewDecoder(reader)}
}

// Compile parses emoji.json data and returns the compiled manifest.
func Compile(name string, reader io.Reader) (*emojidb.Manifest, error) {
	return emojidb.Compile(name, NewRecordReader(reader))
}

type codePoints struct {
	Base              string   `json:"base"`
	FullyQualified    string   `json:"fully_qualified"`
	NonFullyQualified string   `json:"non_fully_qualified"`
	Output            string   `json:"output"`
	DefaultMatches    []string `json:"default_matches"`
	GreedyMatches     []string `json:"greedy_matches"`
}

type entry struct {
	Name                string     `json:"name"`
	Category            string     `json:"category"`
	Shortname           string     `json:"shortname"`
	ShortnameAlternates []string   `json:"shortname_alternates"`
	ASCII               []string   `json:"ascii"`
	DiversityBase       flag       `json:"diversity_base"`
	Diversities         []string   `json:"diversities"`
	CodePoints          codePoints `json:"code_points"`
}

// flag accepts JSON booleans as well as the numbers 0 and 1.
type flag bool

func (f *flag) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true", "1":
		*f = true
	case "false", "0", "null":
		*f = false
	default:
		return errors.Errorf("invalid flag value %s", data)
	}
	return nil
}

// Next returns the next emoji record.
// It returns io.EOF when exhausted.
func (r *RecordReader) Next() (emojidb.Record, error) {
	if r.done {
		return emojidb.Record{}, io.EOF
	}
	if !r.started {
		tok, err := r.dec.Token()
		if err == io.EOF {
			r.done = true
			return emojidb.Record{}, io.EOF
		}
		if err != nil {
			return emojidb.Record{}, errors.Wrap(err, "emoji.json")
		}
		if d, ok := tok.(json.Delim); !ok || d != '{' {
			return emojidb.Record{}, errors.Errorf("emoji.json: expected object, found %v", tok)
		}
		r.started = true
	}
	if !r.dec.More() {
		r.done = true
		if _, err := r.dec.Token(); err != nil {
			return emojidb.Record{}, errors.Wrap(err, "emoji.json")
		}
		return emojidb.Record{}, io.EOF
	}
	tok, err := r.dec.Token()
	if err != nil {
		return emojidb.Record{}, errors.Wrap(err, "emoji.json")
	}
	key, ok := tok.(string)
	if !ok {
		return emojidb.Record{}, errors.Errorf("emoji.json: expected code point key, found %v", tok)
	}
	var e entry
	if err = r.dec.Decode(&e); err != nil {
		return emojidb.Record{}, errors.Wrapf(err, "emoji.json: entry %s", key)
	}
	return e.record(key), nil
}

func (e *entry) record(key string) emojidb.Record {
	base := strings.ToLower(e.CodePoints.Base)
	if base == "" {
		base = strings.ToLower(key)
	}
	rec := emojidb.Record{
		Base:                base,
		Shortname:           e.Shortname,
		ShortnameAlternates: e.ShortnameAlternates,
		Category:            e.Category,
		ASCII:               e.ASCII,
		Diverse:             bool(e.DiversityBase) || len(e.Diversities) > 0,
	}
	seen := map[string]bool{base: true}
	candidates := []string{e.CodePoints.FullyQualified, e.CodePoints.NonFullyQualified, e.CodePoints.Output}
	candidates = append(candidates, e.CodePoints.DefaultMatches...)
	candidates = append(candidates, e.CodePoints.GreedyMatches...)
	for _, cp := range candidates {
		cp = strings.ToLower(cp)
		if cp == "" || seen[cp] {
			continue
		}
		seen[cp] = true
		rec.Alternates = append(rec.Alternates, cp)
	}
	return rec
}
