package emojione

import (
	"fmt"

	"github.com/npillmayer/emojione/codepoint"
	"github.com/pkg/errors"
)

func (c *Converter) unicode(base string) (string, error) {
	return codepoint.ToUnicode(base)
}

func (c *Converter) shortname(base string) (string, error) {
	meta, ok := c.tables.Meta(base)
	if !ok {
		return "", errors.Errorf("no metadata for emoji %s", base)
	}
	return meta.Shortname, nil
}

// markup renders an emoji as <img> or, if requested, as sprite <span>.
//
//	<img class="emojione" alt="😄" title=":smile:" src="https://…/32/1f604.png" />
//	<span class="emojione emojione-32-people _1f604" title=":smile:">😄</span>
func (c *Converter) markup(base string, o options) (string, error) {
	meta, ok := c.tables.Meta(base)
	if !ok {
		return "", errors.Errorf("no metadata for emoji %s", base)
	}
	unicode, err := c.unicode(base)
	if err != nil {
		return "", err
	}
	if o.sprite {
		return fmt.Sprintf(`<span class="emojione emojione-%s-%s _%s" title="%s">%s</span>`,
			c.config.Size, meta.Category, base, meta.Shortname, unicode), nil
	}
	alt := unicode
	if !o.unicodeAlt {
		alt = meta.Shortname
	}
	return fmt.Sprintf(`<img class="emojione" alt="%s" title="%s" src="%s%s/%s.png" />`,
		alt, meta.Shortname, c.config.ImagePath, c.config.Size, base), nil
}

// Markup renders the emoji with base code point base as HTML, an <img> or,
// with option WithSprite, a sprite <span>. Option WithUnicodeAlt applies.
func (c *Converter) Markup(base string, opts ...Option) (string, error) {
	return c.markup(base, collect(opts))
}
