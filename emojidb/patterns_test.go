package emojidb

import (
	"strings"
	"testing"
)

func TestASCIIPattern(t *testing.T) {
	p := ASCIIPattern([]string{":)", `:\`, ":-)", ":')"})
	if !strings.HasPrefix(p, `(?<=\s|^)(`) || !strings.HasSuffix(p, `)(?=\s|$|[!,\.])`) {
		t.Fatalf("ASCII pattern lacks boundary assertions: %s", p)
	}
	if want := `(:'\)|:-\)|:\)|:\\)`; !strings.Contains(p, want) {
		t.Fatalf("ASCII pattern should contain escaped, longest-first aliases %s, is %s", want, p)
	}
}

func TestEmptyPatterns(t *testing.T) {
	if p := ASCIIPattern(nil); p != "" {
		t.Fatalf("expected empty ASCII pattern, have %q", p)
	}
	if p := ShortnamePattern(nil); p != "" {
		t.Fatalf("expected empty shortname pattern, have %q", p)
	}
	if p, err := UnicodePattern(nil); p != "" || err != nil {
		t.Fatalf("expected empty unicode pattern, have %q, %v", p, err)
	}
}

func TestShortnamePatternEscapes(t *testing.T) {
	p := ShortnamePattern([]string{":smile:", ":+1:"})
	if p != `(:\+1:|:smile:)` {
		t.Fatalf("unexpected shortname pattern %s", p)
	}
}

func TestUnicodePatternRejectsUnordered(t *testing.T) {
	if _, err := UnicodePattern([]string{"1f44d", "1f44d-1f3fb"}); err == nil {
		t.Fatalf("expected error for prefix ordered before its extension")
	}
}

func TestSortLongestFirst(t *testing.T) {
	keys := []string{"1f44d", "2764", "1f44d-1f3fb", "2764-fe0f", "0023-fe0f-20e3"}
	if err := SortLongestFirst(keys); err != nil {
		t.Fatal(err)
	}
	want := []string{"1f44d-1f3fb", "0023-fe0f-20e3", "1f44d", "2764-fe0f", "2764"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("got %v, want %v", keys, want)
		}
	}
}
