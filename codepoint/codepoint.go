/*
Package codepoint converts between emoji text and code point keys.

A code point key is the lowercase hexadecimal notation of every Unicode scalar
value of a sequence, each with at least four digits, joined by dashes:

	"😀"          => "1f600"
	"#️⃣"          => "0023-fe0f-20e3"
	"👨‍👩‍👧‍👦"  => "1f468-200d-1f469-200d-1f467-200d-1f466"

Emoji pattern strings spell code points as UTF-16 escapes, so the package
also works on code unit sequences and exposes the surrogate arithmetic needed
to build such patterns.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package codepoint

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrInvalidCodepoint is returned for keys or texts which do not denote a
// sequence of Unicode scalar values.
var ErrInvalidCodepoint = errors.New("invalid code point")

const (
	surrSelf  = 0x10000
	surrHigh  = 0xD800
	surrLow   = 0xDC00
	surrEnd   = 0xE000
	maxScalar = 0x10FFFF
)

// ToCodePoint returns the code point key for a run of one or more Unicode
// scalar values.
func ToCodePoint(s string) (string, error) {
	if s == "" {
		return "", errors.Wrap(ErrInvalidCodepoint, "empty text")
	}
	var b strings.Builder
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size <= 1 {
				return "", errors.Wrapf(ErrInvalidCodepoint, "invalid UTF-8 at byte %d", i)
			}
		}
		writeKeyPart(&b, r)
	}
	return b.String(), nil
}

// FromUTF16 returns the code point key for a sequence of UTF-16 code units.
// A surrogate pair is consumed as one scalar value; a lone surrogate is an error.
func FromUTF16(units []uint16) (string, error) {
	rr := make([]rune, len(units))
	for i, u := range units {
		rr[i] = rune(u)
	}
	return FromUnits(rr)
}

// FromUnits is like FromUTF16, but takes runes. Runes may be UTF-16 code
// units or scalar values, so FromUnits also accepts the code points of a Text.
func FromUnits(units []rune) (string, error) {
	if len(units) == 0 {
		return "", errors.Wrap(ErrInvalidCodepoint, "empty code unit sequence")
	}
	var b strings.Builder
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case (u >= 0 && u < surrHigh) || (u >= surrEnd && u < surrSelf):
			writeKeyPart(&b, u)
		case u >= surrSelf && u <= maxScalar:
			writeKeyPart(&b, u)
		case u >= surrHigh && u < surrLow && i+1 < len(units) && isLowSurrogate(units[i+1]):
			writeKeyPart(&b, utf16.DecodeRune(u, units[i+1]))
			i++
		default:
			return "", errors.Wrapf(ErrInvalidCodepoint, "unpaired surrogate %04X at unit %d", u, i)
		}
	}
	return b.String(), nil
}

func isLowSurrogate(u rune) bool {
	return u >= surrLow && u < surrEnd
}

func writeKeyPart(b *strings.Builder, r rune) {
	if b.Len() > 0 {
		b.WriteByte('-')
	}
	fmt.Fprintf(b, "%04x", r)
}

// ToUTF16 returns the UTF-16 code units of the sequence denoted by key.
func ToUTF16(key string) ([]uint16, error) {
	values, err := parseKey(key)
	if err != nil {
		return nil, err
	}
	units := make([]uint16, 0, 2*len(values))
	for _, v := range values {
		if v >= surrSelf {
			hi := (v-surrSelf)/0x400 + surrHigh
			lo := (v-surrSelf)%0x400 + surrLow
			units = append(units, uint16(hi), uint16(lo))
			continue
		}
		units = append(units, uint16(v))
	}
	return units, nil
}

// ToUnicode returns the text denoted by a code point key.
//
//	"1f44d-1f3fb" => "👍🏻"
func ToUnicode(key string) (string, error) {
	units, err := ToUTF16(key)
	if err != nil {
		return "", err
	}
	return string(utf16.Decode(units)), nil
}

// ToSurrogateEscapeString returns key as a sequence of `\uXXXX` escapes, one
// for each UTF-16 code unit.
//
//	"1f600" => `\uD83D\uDE00`
func ToSurrogateEscapeString(key string) (string, error) {
	units, err := ToUTF16(key)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(6 * len(units))
	for _, u := range units {
		fmt.Fprintf(&b, `\u%04X`, u)
	}
	return b.String(), nil
}

// UnitLen returns the number of UTF-16 code units of the sequence denoted by key.
func UnitLen(key string) (int, error) {
	values, err := parseKey(key)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, v := range values {
		n++
		if v >= surrSelf {
			n++
		}
	}
	return n, nil
}

func parseKey(key string) ([]uint32, error) {
	if key == "" {
		return nil, errors.Wrap(ErrInvalidCodepoint, "empty key")
	}
	parts := strings.Split(key, "-")
	values := make([]uint32, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseUint(part, 16, 32)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidCodepoint, "component %q of key %q", part, key)
		}
		if v > maxScalar || (v >= surrHigh && v < surrEnd) {
			return nil, errors.Wrapf(ErrInvalidCodepoint, "component %q of key %q is not a scalar value", part, key)
		}
		values[i] = uint32(v)
	}
	return values, nil
}
