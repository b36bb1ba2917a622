/*
Package emojidb holds the emoji data the conversion engine works on.

Emoji databases are streamed as Records through a RecordReader and compiled
into a Manifest: four mappings (ASCII alias, shortname and alternate code
point to base code point, base code point to metadata) plus four pattern
strings. A Manifest is the stable data contract between whatever produced the
emoji data and the engine; it may be serialized as JSON and loaded again
without the original database.

File format parsing is outside this package. Use adapters like package jsondb
to read concrete formats and feed Compile.

Invariants

Base code points are unique, every shortname (canonical or alternate) belongs
to exactly one emoji, and every alternate code point and ASCII alias
normalizes to exactly one base code point. The unicode alternatives are
ordered by descending length, so that a multi code point sequence is always
tried before any shorter sequence it starts with.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package emojidb

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'emojione.db'
func tracer() tracing.Trace {
	return tracing.Select("emojione.db")
}
