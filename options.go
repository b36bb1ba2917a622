package emojione

// Default image location and size, pointing to the EmojiOne 4.0 PNG assets.
const (
	DefaultImagePath = "https://cdn.jsdelivr.net/emojione/assets/4.0/png/"
	DefaultSize      = "32"
)

// Config holds the rendering configuration of a Converter.
//
// Image sources are rendered as ImagePath + Size + "/" + base + ".png",
// sprite classes as "emojione-" + Size + "-" + category.
type Config struct {
	ImagePath string
	Size      string
}

func (c Config) withDefaults() Config {
	if c.ImagePath == "" {
		c.ImagePath = DefaultImagePath
	}
	if c.Size == "" {
		c.Size = DefaultSize
	}
	return c
}

// Option modifies a single conversion call.
type Option func(*options)

type options struct {
	ascii      bool // convert ASCII emoticons as well
	unicodeAlt bool // use the unicode sequence as alt text of images
	sprite     bool // render sprites instead of images
}

func collect(opts []Option) options {
	o := options{unicodeAlt: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithASCII enables or disables the conversion of ASCII emoticons.
// Default is false.
func WithASCII(b bool) Option {
	return func(o *options) {
		o.ascii = b
	}
}

// WithUnicodeAlt selects the alt text of emoji images: the unicode sequence
// (true) or the shortname (false). Default is true.
func WithUnicodeAlt(b bool) Option {
	return func(o *options) {
		o.unicodeAlt = b
	}
}

// WithSprite renders emoji as sprite <span> elements instead of <img>
// elements. Default is false.
func WithSprite(b bool) Option {
	return func(o *options) {
		o.sprite = b
	}
}
