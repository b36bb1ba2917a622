package emojione

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/npillmayer/emojione/emojidb/jsondb"
)

//go:embed data/emoji.json
var emojiDatabase []byte

var defaultConverter struct {
	once sync.Once
	c    *Converter
}

// Default returns the converter for the embedded EmojiOne database, rendering
// with DefaultImagePath and DefaultSize. It is created on first use.
func Default() *Converter {
	defaultConverter.once.Do(func() {
		c, err := Load("emojione", jsondb.NewRecordReader(bytes.NewReader(emojiDatabase)), Config{})
		if err != nil {
			panic(fmt.Sprintf("embedded emoji database is broken: %v", err))
		}
		defaultConverter.c = c
	})
	return defaultConverter.c
}

// ASCIIToUnicode replaces ASCII emoticons by unicode emoji, using the default
// converter.
func ASCIIToUnicode(s string) string {
	return Default().ASCIIToUnicode(s)
}

// ShortnameToUnicode replaces shortnames by unicode emoji, using the default
// converter.
func ShortnameToUnicode(s string) string {
	return Default().ShortnameToUnicode(s)
}

// ShortnameToImage replaces shortnames by emoji images, using the default
// converter.
func ShortnameToImage(s string, opts ...Option) string {
	return Default().ShortnameToImage(s, opts...)
}

// ShortnameToASCII replaces shortnames by ASCII emoticons, using the default
// converter.
func ShortnameToASCII(s string) string {
	return Default().ShortnameToASCII(s)
}

// ToShort replaces unicode emoji by shortnames, using the default converter.
func ToShort(s string, opts ...Option) string {
	return Default().ToShort(s, opts...)
}

// ToImage replaces unicode emoji and shortnames by emoji images, using the
// default converter.
func ToImage(s string, opts ...Option) string {
	return Default().ToImage(s, opts...)
}

// UnifyUnicode replaces shortnames by unicode emoji, using the default
// converter.
func UnifyUnicode(s string, opts ...Option) string {
	return Default().UnifyUnicode(s, opts...)
}
