package emojidb

import (
	"fmt"
	"strings"
)

// Skin tone modifiers (Fitzpatrick types), in tone order 1..5.
var toneModifiers = [5]string{"1f3fb", "1f3fc", "1f3fd", "1f3fe", "1f3ff"}

// ToneModifier returns the code point key of skin tone n (1..5), or "".
func ToneModifier(n int) string {
	if n < 1 || n > len(toneModifiers) {
		return ""
	}
	return toneModifiers[n-1]
}

// ToneOf returns the skin tone (1..5) of a modifier code point, or 0.
func ToneOf(r rune) int {
	if r >= 0x1F3FB && r <= 0x1F3FF {
		return int(r-0x1F3FB) + 1
	}
	return 0
}

// SplitTone splits a trailing skin tone modifier off a code point key.
//
//	"1f44d-1f3fb" => "1f44d", 1
//	"1f44d"       => "1f44d", 0
func SplitTone(key string) (head string, tone int) {
	i := strings.LastIndexByte(key, '-')
	if i <= 0 {
		return key, 0
	}
	last := key[i+1:]
	for n, mod := range toneModifiers {
		if last == mod {
			return key[:i], n + 1
		}
	}
	return key, 0
}

// ToneShortname derives the shortname of a skin tone variant.
//
//	":thumbsup:", 1 => ":thumbsup_tone1:"
func ToneShortname(shortname string, tone int) string {
	name := strings.TrimSuffix(shortname, ":")
	return fmt.Sprintf("%s_tone%d:", name, tone)
}

// toneVariants synthesizes the five skin tone variants of a diverse record.
// The variants share the category of their base.
func toneVariants(rec Record) []Record {
	variants := make([]Record, 0, len(toneModifiers))
	for i, mod := range toneModifiers {
		tone := i + 1
		v := Record{
			Base:      rec.Base + "-" + mod,
			Shortname: ToneShortname(rec.Shortname, tone),
			Category:  rec.Category,
		}
		for _, alt := range rec.ShortnameAlternates {
			v.ShortnameAlternates = append(v.ShortnameAlternates, ToneShortname(alt, tone))
		}
		for _, alt := range rec.Alternates {
			v.Alternates = append(v.Alternates, alt+"-"+mod)
		}
		variants = append(variants, v)
	}
	return variants
}
