package codepoint

import (
	"golang.org/x/text/unicode/runenames"
)

// Names returns the Unicode character names of the scalar values of key.
// It is meant for diagnostics, e.g. when tracing an unresolved sequence.
//
//	"1f44d-1f3fb" => [ "THUMBS UP SIGN", "EMOJI MODIFIER FITZPATRICK TYPE-1-2" ]
func Names(key string) ([]string, error) {
	values, err := parseKey(key)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = runenames.Name(rune(v))
	}
	return names, nil
}
