package codepoint

import "testing"

func TestTextRunes(t *testing.T) {
	text := NewText("a😀b")
	if text.Len() != 3 {
		t.Fatalf("expected 3 code points, have %d", text.Len())
	}
	if r := text.Runes()[1]; r != 0x1F600 {
		t.Fatalf("expected U+1F600, have %U", r)
	}
	if off := text.Offset(2); off != 5 {
		t.Fatalf("expected byte offset 5, have %d", off)
	}
}

func TestTextSlice(t *testing.T) {
	text := NewText("a😀b")
	tests := []struct {
		from, to int
		want     string
	}{
		{0, 1, "a"},
		{1, 2, "😀"},
		{2, 3, "b"},
		{0, 3, "a😀b"},
		{1, 3, "😀b"},
		{2, 1, ""},
		{-1, 9, "a😀b"},
	}
	for _, tt := range tests {
		if got := text.Slice(tt.from, tt.to); got != tt.want {
			t.Fatalf("Slice(%d,%d): got %q, want %q", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestTextKeepsInvalidBytes(t *testing.T) {
	src := "x\xff😀"
	text := NewText(src)
	if text.Runes()[1] != 0xFFFD {
		t.Fatalf("expected replacement character for invalid byte")
	}
	if got := text.Slice(0, text.Len()); got != src {
		t.Fatalf("got %q, want %q", got, src)
	}
	if got := text.Slice(0, 2); got != "x\xff" {
		t.Fatalf("got %q, want %q", got, "x\xff")
	}
}
