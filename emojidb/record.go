package emojidb

import "io"

// Record is a format-agnostic emoji database entry.
type Record struct {
	Base                string   // canonical code point key, e.g. "1f44d"
	Shortname           string   // e.g. ":thumbsup:"
	ShortnameAlternates []string // e.g. ":+1:", ":thumbup:"
	Category            string   // e.g. "people"
	ASCII               []string // emoticons; the first one is the primary alias
	Alternates          []string // code point keys normalizing to Base
	Diverse             bool     // Base accepts skin tone modifiers
}

// RecordReader yields emoji records one-by-one.
// It should return io.EOF when the stream is exhausted.
type RecordReader interface {
	Next() (Record, error)
}

// SliceReader is a RecordReader over an in-memory list of records.
type SliceReader struct {
	records []Record
	index   int
}

// NewSliceReader returns a RecordReader for records.
func NewSliceReader(records []Record) *SliceReader {
	return &SliceReader{records: records}
}

// Next returns the next record or io.EOF.
func (r *SliceReader) Next() (Record, error) {
	if r.index >= len(r.records) {
		return Record{}, io.EOF
	}
	rec := r.records[r.index]
	r.index++
	return rec, nil
}
