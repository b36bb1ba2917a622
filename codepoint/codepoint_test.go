package codepoint

import (
	"reflect"
	"testing"

	"github.com/enescakir/emoji"
	"github.com/pkg/errors"
)

func TestToCodePoint(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{text: "😀", want: "1f600"},
		{text: "9⃣", want: "0039-20e3"},
		{text: "#️⃣", want: "0023-fe0f-20e3"},
		{text: "👍🏿", want: "1f44d-1f3ff"},
		{text: "👨‍👩‍👧‍👦", want: "1f468-200d-1f469-200d-1f467-200d-1f466"},
		{text: "©", want: "00a9"},
	}
	for _, tt := range tests {
		got, err := ToCodePoint(tt.text)
		if err != nil {
			t.Fatalf("ToCodePoint(%q) failed: %v", tt.text, err)
		}
		if got != tt.want {
			t.Fatalf("ToCodePoint(%q): got %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestToCodePointInvalid(t *testing.T) {
	for _, text := range []string{"", "a\xffb"} {
		if _, err := ToCodePoint(text); !errors.Is(err, ErrInvalidCodepoint) {
			t.Fatalf("ToCodePoint(%q): expected ErrInvalidCodepoint, got %v", text, err)
		}
	}
}

func TestFromUTF16SurrogatePairs(t *testing.T) {
	got, err := FromUTF16([]uint16{0xD83D, 0xDE00, 0x0020})
	if err != nil {
		t.Fatal(err)
	}
	if got != "1f600-0020" {
		t.Fatalf("got %q, want %q", got, "1f600-0020")
	}
	for _, units := range [][]uint16{{0xD83D}, {0xDE00, 0xD83D}, {0xD83D, 0x0041}} {
		if _, err := FromUTF16(units); !errors.Is(err, ErrInvalidCodepoint) {
			t.Fatalf("FromUTF16(%X): expected ErrInvalidCodepoint, got %v", units, err)
		}
	}
}

func TestToUTF16(t *testing.T) {
	units, err := ToUTF16("1f600")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(units, []uint16{0xD83D, 0xDE00}) {
		t.Fatalf("got %X, want [D83D DE00]", units)
	}
	units, err = ToUTF16("0039-20e3")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(units, []uint16{0x0039, 0x20E3}) {
		t.Fatalf("got %X, want [39 20E3]", units)
	}
}

func TestToUnicodeInvalid(t *testing.T) {
	for _, key := range []string{"", "zz", "1f600-", "110000", "d83d", "1f600--1f3fb"} {
		if _, err := ToUnicode(key); !errors.Is(err, ErrInvalidCodepoint) {
			t.Fatalf("ToUnicode(%q): expected ErrInvalidCodepoint, got %v", key, err)
		}
	}
}

func TestSurrogateEscapeString(t *testing.T) {
	got, err := ToSurrogateEscapeString("1f600")
	if err != nil {
		t.Fatal(err)
	}
	if want := `\uD83D\uDE00`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	got, _ = ToSurrogateEscapeString("0023-fe0f-20e3")
	if want := `\u0023\uFE0F\u20E3`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestUnitLen(t *testing.T) {
	tests := []struct {
		key  string
		want int
	}{
		{key: "1f600", want: 2},
		{key: "0023-fe0f-20e3", want: 3},
		{key: "1f468-200d-1f469-200d-1f467-200d-1f466", want: 11},
	}
	for _, tt := range tests {
		if got, _ := UnitLen(tt.key); got != tt.want {
			t.Fatalf("UnitLen(%q): got %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestKeyRoundTrip(t *testing.T) {
	keys := []string{"1f600", "0023-20e3", "1f44d-1f3fb", "2764-fe0f", "1f3f3-fe0f-200d-1f308"}
	for _, key := range keys {
		text, err := ToUnicode(key)
		if err != nil {
			t.Fatal(err)
		}
		back, err := ToCodePoint(text)
		if err != nil {
			t.Fatal(err)
		}
		if back != key {
			t.Fatalf("round trip of %q yields %q", key, back)
		}
	}
}

// Every emoji known to an independent shortcode library must survive
// text -> key -> text unchanged.
func TestRoundTripAgainstEmojiLibrary(t *testing.T) {
	n := 0
	for alias, text := range emoji.Map() {
		key, err := ToCodePoint(text)
		if err != nil {
			t.Fatalf("%s: ToCodePoint(%q) failed: %v", alias, text, err)
		}
		back, err := ToUnicode(key)
		if err != nil {
			t.Fatalf("%s: ToUnicode(%q) failed: %v", alias, key, err)
		}
		if back != text {
			t.Fatalf("%s: round trip of %q yields %q (key %q)", alias, text, back, key)
		}
		if k, _ := FromUnits(NewText(text).Runes()); k != key {
			t.Fatalf("%s: code point key %q differs from %q", alias, k, key)
		}
		units, _ := ToUTF16(key)
		if k, _ := FromUTF16(units); k != key {
			t.Fatalf("%s: code unit key %q differs from %q", alias, k, key)
		}
		n++
	}
	if n == 0 {
		t.Fatalf("emoji library provided no entries")
	}
}

func TestNames(t *testing.T) {
	names, err := Names("1f44d-1f3fb")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"THUMBS UP SIGN", "EMOJI MODIFIER FITZPATRICK TYPE-1-2"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("got %v, want %v", names, want)
	}
}
