/*
Package mdemoji is an extension for the goldmark markdown parser, rewriting
emoji in markdown text.

	md := goldmark.New(goldmark.WithExtensions(&mdemoji.Extension{Mode: mdemoji.Image}))

Shortnames (and, if enabled, ASCII emoticons) are replaced in text nodes
only. Code spans, code blocks, raw HTML, autolinks and image descriptions are
left untouched.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package mdemoji

import (
	"bytes"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/emojione"
	"github.com/npillmayer/schuko/tracing"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// tracer writes to trace with key 'emojione.md'
func tracer() tracing.Trace {
	return tracing.Select("emojione.md")
}

// Mode selects the representation emoji are rewritten to.
type Mode int

const (
	// Unicode replaces shortnames by unicode emoji.
	Unicode Mode = iota
	// Image replaces shortnames and unicode emoji by emoji markup.
	Image
)

// Extension rewrites emoji in markdown documents.
type Extension struct {
	Converter *emojione.Converter // nil selects emojione.Default()
	Mode      Mode
	ASCII     bool // convert ASCII emoticons as well
	Sprite    bool // Image mode renders sprites instead of images
}

// Extend implements goldmark.Extender.
func (e *Extension) Extend(m goldmark.Markdown) {
	conv := e.Converter
	if conv == nil {
		conv = emojione.Default()
	}
	t := &transformer{conv: conv, mode: e.Mode}
	t.kinds = []emojione.TokenKind{emojione.Shortname}
	if e.Mode == Image {
		t.kinds = append(t.kinds, emojione.Unicode)
	}
	if e.ASCII {
		t.kinds = append(t.kinds, emojione.ASCII)
	}
	t.opts = []emojione.Option{emojione.WithSprite(e.Sprite)}
	m.Parser().AddOptions(parser.WithASTTransformers(util.Prioritized(t, 999)))
}

type transformer struct {
	conv  *emojione.Converter
	mode  Mode
	kinds []emojione.TokenKind
	opts  []emojione.Option
}

// Transform implements parser.ASTTransformer.
func (t *transformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	source := reader.Source()
	var runs [][]*ast.Text
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindCodeSpan, ast.KindCodeBlock, ast.KindFencedCodeBlock, ast.KindHTMLBlock,
			ast.KindRawHTML, ast.KindAutoLink, ast.KindImage:
			return ast.WalkSkipChildren, nil
		}
		runs = append(runs, textRuns(n)...)
		return ast.WalkContinue, nil
	})
	n := 0
	for _, run := range runs {
		if t.rewrite(run, source) {
			n++
		}
	}
	tracer().Debugf("rewrote emoji in %d of %d text runs", n, len(runs))
}

// textRuns collects runs of adjacent text children of n. A run ends with
// a line break.
func textRuns(n ast.Node) [][]*ast.Text {
	var runs [][]*ast.Text
	var run []*ast.Text
	flush := func() {
		if len(run) > 0 {
			runs = append(runs, run)
			run = nil
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		txt, ok := c.(*ast.Text)
		if !ok || txt.IsRaw() {
			flush()
			continue
		}
		run = append(run, txt)
		if txt.SoftLineBreak() || txt.HardLineBreak() {
			flush()
		}
	}
	flush()
	return runs
}

// rewrite replaces a run of text nodes by string nodes, if the run contains
// emoji.
func (t *transformer) rewrite(run []*ast.Text, source []byte) bool {
	var buf bytes.Buffer
	for _, txt := range run {
		buf.Write(txt.Segment.Value(source))
	}
	tokens := t.conv.Tokenize(buf.String(), t.kinds...)
	tokens = demote(tokens, buf.Bytes(), run, source)
	found := false
	for _, tok := range tokens {
		if tok.Kind != emojione.Literal && tok.Kind != emojione.Excluded {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	first, last := run[0], run[len(run)-1]
	parent := first.Parent()
	for _, tok := range tokens {
		parent.InsertBefore(parent, first, t.node(tok))
	}
	if last.SoftLineBreak() || last.HardLineBreak() {
		br := ast.NewTextSegment(text.NewSegment(last.Segment.Stop, last.Segment.Stop))
		br.SetSoftLineBreak(last.SoftLineBreak())
		br.SetHardLineBreak(last.HardLineBreak())
		parent.InsertBefore(parent, first, br)
	}
	for _, txt := range run {
		parent.RemoveChild(parent, txt)
	}
	return true
}

// demote turns emoji tokens into literals if they are escaped by a backslash.
// A run is tokenized on its own, so ASCII emoticons at the edges of a run are
// checked against the source around it. Adjacent literals are merged, keeping
// backslash escapes within a single node.
func demote(tokens []emojione.Token, buf []byte, run []*ast.Text, source []byte) []emojione.Token {
	first, last := run[0], run[len(run)-1]
	before := source[:first.Segment.Start]
	var after []byte
	if last.Segment.Stop < len(source) {
		after = source[last.Segment.Stop:]
	}
	for i := range tokens {
		tok := &tokens[i]
		if tok.Kind != emojione.Shortname && tok.Kind != emojione.ASCII {
			continue
		}
		if escaped(buf[:tok.Start], before) {
			tok.Kind = emojione.Literal
			continue
		}
		if tok.Kind != emojione.ASCII {
			continue
		}
		if tok.Start == 0 && !startsLine(first) && !spaceBefore(before) {
			tok.Kind = emojione.Literal
		} else if tok.End == len(buf) && !endsLine(last) && !delimiterAfter(after) {
			tok.Kind = emojione.Literal
		}
	}
	merged := tokens[:0]
	for _, tok := range tokens {
		if tok.Kind == emojione.Literal {
			tok.Base = ""
		}
		if n := len(merged); n > 0 && tok.Kind == emojione.Literal && merged[n-1].Kind == emojione.Literal {
			merged[n-1].Text += tok.Text
			merged[n-1].End = tok.End
			continue
		}
		merged = append(merged, tok)
	}
	return merged
}

// escaped reports if the text preceding a token ends with an odd number of
// backslashes. Backslashes are counted into the source before the run.
func escaped(prefix, before []byte) bool {
	n := 0
	for i := len(prefix) - 1; i >= 0 && prefix[i] == '\\'; i-- {
		n++
	}
	if n == len(prefix) {
		for i := len(before) - 1; i >= 0 && before[i] == '\\'; i-- {
			n++
		}
	}
	return n%2 == 1
}

func spaceBefore(before []byte) bool {
	r, size := utf8.DecodeLastRune(before)
	return size == 0 || unicode.IsSpace(r)
}

func delimiterAfter(after []byte) bool {
	r, size := utf8.DecodeRune(after)
	return size == 0 || unicode.IsSpace(r) || r == '!' || r == ',' || r == '.'
}

func startsLine(txt *ast.Text) bool {
	return txt.PreviousSibling() == nil && txt.Parent().Type() == ast.TypeBlock
}

// endsLine is true for the last node of a line or of a block.
func endsLine(txt *ast.Text) bool {
	if txt.SoftLineBreak() || txt.HardLineBreak() {
		return true
	}
	return txt.NextSibling() == nil && txt.Parent().Type() == ast.TypeBlock
}

func (t *transformer) node(tok emojione.Token) ast.Node {
	literal := ast.NewString([]byte(tok.Text))
	if tok.Kind == emojione.Literal || tok.Kind == emojione.Excluded {
		return literal
	}
	if t.mode == Image {
		markup, err := t.conv.Markup(tok.Base, t.opts...)
		if err != nil {
			tracer().Errorf("emoji %s: %v", tok.Base, err)
			return literal
		}
		s := ast.NewString([]byte(markup))
		s.SetCode(true)
		return s
	}
	emoji, err := emojione.ToUnicode(tok.Base)
	if err != nil {
		tracer().Errorf("emoji %s: %v", tok.Base, err)
		return literal
	}
	return ast.NewString([]byte(emoji))
}
