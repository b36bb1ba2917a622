/*
Package emojione converts emoji between their textual representations.

Emoji may appear in text as ASCII emoticons (":)", ":D"), as shortnames
(":smile:"), as raw Unicode sequences, or as HTML markup embedding an emoji
image or sprite. A Converter rewrites text from one representation to another.
It scans text once from left to right, splitting it into non-overlapping
tokens, resolves every emoji token to its base code point and re-renders it in
the target representation. Everything else is copied unchanged.

Some regions of text are never rewritten: emoji markup produced by an earlier
conversion, and other inline HTML tags. Converting output a second time is
therefore harmless. ASCII emoticons are recognized only if they stand on their
own, so that "user:pass" or "http://" are left alone.

Skin tone variants are first-class emoji. A base emoji directly followed by a
skin tone modifier resolves to its variant, e.g. U+1F44D U+1F3FB to
":thumbsup_tone1:".

The package-level functions use a default converter built from the embedded
EmojiOne database. Clients with their own emoji data compile it with package
emojidb and create a Converter with New or Load.

Converters are immutable and safe for concurrent use.

Further Reading

	https://github.com/emojione/emojione
	https://unicode.org/reports/tr51/   (Unicode Emoji)

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package emojione

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'emojione'
func tracer() tracing.Trace {
	return tracing.Select("emojione")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
