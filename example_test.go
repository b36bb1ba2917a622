package emojione_test

import (
	"fmt"

	"github.com/npillmayer/emojione"
)

func ExampleShortnameToUnicode() {
	fmt.Println(emojione.ShortnameToUnicode("Hello :smile:, user:pass :invalid:snail:"))
	// Output: Hello 😄, user:pass :invalid🐌
}

func ExampleToShort() {
	fmt.Println(emojione.ToShort("👍🏻 and 🦄 :)", emojione.WithASCII(true)))
	// Output: :thumbsup_tone1: and :unicorn: :slight_smile:
}

func ExampleConverter_ToImage() {
	conv := emojione.Default().WithConfig(emojione.Config{ImagePath: "/img/", Size: "64"})
	fmt.Println(conv.ToImage(":snail:"))
	fmt.Println(conv.ToImage(":snail:", emojione.WithSprite(true)))
	// Output:
	// <img class="emojione" alt="🐌" title=":snail:" src="/img/64/1f40c.png" />
	// <span class="emojione emojione-64-nature _1f40c" title=":snail:">🐌</span>
}
