package emojione

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/emojione/emojidb"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func testRecords() []emojidb.Record {
	return []emojidb.Record{
		{Base: "1f604", Shortname: ":smile:", Category: "people"},
		{Base: "1f642", Shortname: ":slight_smile:", Category: "people", ASCII: []string{":)", ":-)"}},
		{Base: "1f44d", Shortname: ":thumbsup:", Category: "people", ShortnameAlternates: []string{":+1:"}},
		{Base: "1f44d-1f3fb", Shortname: ":thumbsup_tone1:", Category: "diversity"},
		{Base: "261d", Shortname: ":point_up:", Category: "people", Alternates: []string{"261d-fe0f"}},
		{Base: "261d-1f3fb", Shortname: ":point_up_tone1:", Category: "diversity"},
		{Base: "1f3fb", Shortname: ":tone1:", Category: "modifier"},
	}
}

func compileTestManifest(t *testing.T) *emojidb.Manifest {
	t.Helper()
	m, err := emojidb.Compile("test", emojidb.NewSliceReader(testRecords()))
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojione")
	defer teardown()
	//
	c, err := Load("test", emojidb.NewSliceReader(testRecords()), Config{})
	if err != nil {
		t.Fatal(err)
	}
	if c.Identifier != "emoji: test" {
		t.Fatalf("unexpected identifier %q", c.Identifier)
	}
	backend, ascii, shortnames, unicode, compiled := c.MatcherStats()
	if backend != "regexp2" || ascii != 2 || shortnames != 8 || unicode != 8 || compiled != 1 {
		t.Fatalf("unexpected matcher stats %s %d %d %d %d", backend, ascii, shortnames, unicode, compiled)
	}
	if got := c.ShortnameToUnicode(":+1: :smile:"); got != "👍 😄" {
		t.Fatalf("got %q, want %q", got, "👍 😄")
	}
	if _, _, _, _, compiled = c.MatcherStats(); compiled != 2 {
		t.Fatalf("expected 2 compiled matchers, have %d", compiled)
	}
}

func TestNewRejectsBrokenData(t *testing.T) {
	if _, err := New(nil, Config{}); err == nil {
		t.Fatalf("expected error for missing manifest")
	}
	m := compileTestManifest(t)
	m.ASCIIPattern = `(?<=\s|^)(:\)`
	if _, err := New(m, Config{}); err == nil {
		t.Fatalf("expected error for broken ASCII pattern")
	}
	m = compileTestManifest(t)
	m.Shortnames[":ghost:"] = "1f47b"
	if _, err := New(m, Config{}); err == nil {
		t.Fatalf("expected error for dangling shortname")
	}
}

func TestManifestRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := compileTestManifest(t).WriteJSON(&buf); err != nil {
		t.Fatal(err)
	}
	m, err := emojidb.ReadManifest(&buf)
	if err != nil {
		t.Fatal(err)
	}
	c, err := New(m, Config{})
	if err != nil {
		t.Fatal(err)
	}
	if got := c.ToShort("😄 👍🏻"); got != ":smile: :thumbsup_tone1:" {
		t.Fatalf("got %q, want %q", got, ":smile: :thumbsup_tone1:")
	}
}

func TestWithConfig(t *testing.T) {
	c := Default().WithConfig(Config{ImagePath: "/emoji/", Size: "64"})
	want := `<img class="emojione" alt="😄" title=":smile:" src="/emoji/64/1f604.png" />`
	if got := c.ShortnameToImage(":smile:"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	want = `<span class="emojione emojione-64-people _1f604" title=":smile:">😄</span>`
	if got := c.ShortnameToImage(":smile:", WithSprite(true)); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if cfg := Default().Config(); cfg.ImagePath != DefaultImagePath || cfg.Size != DefaultSize {
		t.Fatalf("default converter changed its configuration to %+v", cfg)
	}
	if c.Tables() != Default().Tables() {
		t.Fatalf("converters with different configurations should share their tables")
	}
}

func TestTokenize(t *testing.T) {
	in := "Hi :smile: <i>x</i> 😄 :)"
	want := []Token{
		{Literal, "Hi ", 0, 3, ""},
		{Shortname, ":smile:", 3, 10, "1f604"},
		{Literal, " ", 10, 11, ""},
		{Excluded, "<i>x</i>", 11, 19, ""},
		{Literal, " ", 19, 20, ""},
		{Unicode, "😄", 20, 24, "1f604"},
		{Literal, " ", 24, 25, ""},
		{ASCII, ":)", 25, 27, "1f642"},
	}
	tokens := Default().Tokenize(in)
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, have %d: %v", len(want), len(tokens), tokens)
	}
	var b strings.Builder
	for i, tok := range tokens {
		if tok != want[i] {
			t.Fatalf("token #%d: got %+v, want %+v", i, tok, want[i])
		}
		if in[tok.Start:tok.End] != tok.Text {
			t.Fatalf("token #%d: offsets do not match text %q", i, tok.Text)
		}
		b.WriteString(tok.Text)
	}
	if b.String() != in {
		t.Fatalf("tokens do not reproduce the input")
	}
	tokens = Default().Tokenize(in, Shortname)
	if len(tokens) != 5 || tokens[4].Kind != Literal || tokens[4].Text != " 😄 :)" {
		t.Fatalf("unexpected tokens for shortnames only: %v", tokens)
	}
}

func TestUnresolvedMatchIsLiteral(t *testing.T) {
	m := compileTestManifest(t)
	m.ShortnamePattern = `(:ghost:|:smile:)`
	c, err := New(m, Config{})
	if err != nil {
		t.Fatal(err)
	}
	tokens := c.Tokenize(":ghost::smile:", Shortname)
	if len(tokens) != 2 || tokens[0].Kind != Literal || tokens[0].Text != ":ghost:" {
		t.Fatalf("unknown shortname should be literal, have %v", tokens)
	}
	if got := c.ShortnameToUnicode(":ghost::smile:"); got != ":ghost:😄" {
		t.Fatalf("got %q, want %q", got, ":ghost:😄")
	}
}

func TestRuntimeSkinToneMerge(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojione")
	defer teardown()
	//
	m := compileTestManifest(t)
	c, err := New(m, Config{})
	if err != nil {
		t.Fatal(err)
	}
	// 261d-fe0f-1f3fb is not in the tables, its head normalizes to 261d
	if got := c.ToShort("\u261d\ufe0f\U0001F3FB"); got != ":point_up_tone1:" {
		t.Fatalf("got %q, want %q", got, ":point_up_tone1:")
	}
	if got := c.ToShort("\u261d\ufe0f \U0001F3FB"); got != ":point_up: :tone1:" {
		t.Fatalf("got %q, want %q", got, ":point_up: :tone1:")
	}
	// a pattern without modifier sequences still yields the variant
	m.UnicodePattern, err = emojidb.UnicodePattern([]string{"1f3fb", "1f44d", "1f604", "1f642", "261d"})
	if err != nil {
		t.Fatal(err)
	}
	if c, err = New(m, Config{}); err != nil {
		t.Fatal(err)
	}
	if got := c.ToShort("👍🏻👍"); got != ":thumbsup_tone1::thumbsup:" {
		t.Fatalf("got %q, want %q", got, ":thumbsup_tone1::thumbsup:")
	}
	tokens := c.Tokenize("👍🏻", Unicode)
	if len(tokens) != 1 || tokens[0].Base != "1f44d-1f3fb" || tokens[0].End != 8 {
		t.Fatalf("expected one merged token, have %v", tokens)
	}
}

func TestDecodeSurrogateEscapes(t *testing.T) {
	in := `(\uD83D\uDE00|\u0023\uFE0F\u20E3|\\uD83D\uDE00|\uD83D)`
	want := "(\U0001F600|\\u0023\\uFE0F\\u20E3|\\\\uD83D\\uDE00|\\uD83D)"
	if got := decodeSurrogateEscapes(in); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTokenKindString(t *testing.T) {
	if s := Shortname.String(); s != "Shortname" {
		t.Fatalf("got %q, want %q", s, "Shortname")
	}
}
