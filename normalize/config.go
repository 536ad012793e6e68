package normalize

import "fmt"

// EmojiMode controls what the emoji pass does with emoji tokens.
type EmojiMode string

const (
	// EmojiRemove deletes emoji from the output.
	EmojiRemove EmojiMode = "remove"
	// EmojiConvert replaces known emoji with a Kurdish description.
	EmojiConvert EmojiMode = "convert"
	// EmojiIgnore leaves emoji untouched.
	EmojiIgnore EmojiMode = "ignore"
)

// DiacriticsMode controls how harakat-carrying Arabic words are handled.
type DiacriticsMode string

const (
	// DiacriticsConvert rewrites vocalized words into plain Kurdish
	// letters following recitation rules.
	DiacriticsConvert DiacriticsMode = "convert"
	// DiacriticsRemove strips the diacritic marks and keeps the bare
	// consonant skeleton.
	DiacriticsRemove DiacriticsMode = "remove"
	// DiacriticsKeep leaves vocalized words untouched.
	DiacriticsKeep DiacriticsMode = "keep"
)

// ShaddaMode controls gemination when converting diacritics.
type ShaddaMode string

const (
	// ShaddaDouble writes a shadda-marked consonant twice.
	ShaddaDouble ShaddaMode = "double"
	// ShaddaRemove drops the mark and writes the consonant once.
	ShaddaRemove ShaddaMode = "remove"
)

// Config selects which passes run and how the mode-gated ones behave.
// The zero value disables everything; start from DefaultConfig.
type Config struct {
	Numbers         bool
	Web             bool
	Phone           bool
	DateTime        bool
	Units           bool
	Currency        bool
	Technical       bool
	Math            bool
	Diacritics      bool
	Symbols         bool
	Linguistics     bool
	Transliteration bool

	// PauseMarkers inserts a Kurdish comma between phone number groups.
	PauseMarkers bool

	EmojiMode      EmojiMode
	DiacriticsMode DiacriticsMode
	ShaddaMode     ShaddaMode
}

// DefaultConfig enables every pass with removal of emoji and full
// diacritics conversion.
func DefaultConfig() Config {
	return Config{
		Numbers:         true,
		Web:             true,
		Phone:           true,
		DateTime:        true,
		Units:           true,
		Currency:        true,
		Technical:       true,
		Math:            true,
		Diacritics:      true,
		Symbols:         true,
		Linguistics:     true,
		Transliteration: true,
		EmojiMode:       EmojiRemove,
		DiacriticsMode:  DiacriticsConvert,
		ShaddaMode:      ShaddaDouble,
	}
}

// Validate rejects unknown mode values. Empty modes are filled with the
// defaults so a struct-literal Config only has to name what it changes.
func (c *Config) Validate() error {
	if c.EmojiMode == "" {
		c.EmojiMode = EmojiRemove
	}
	if c.DiacriticsMode == "" {
		c.DiacriticsMode = DiacriticsConvert
	}
	if c.ShaddaMode == "" {
		c.ShaddaMode = ShaddaDouble
	}
	switch c.EmojiMode {
	case EmojiRemove, EmojiConvert, EmojiIgnore:
	default:
		return fmt.Errorf("normalize: unknown emoji mode %q", c.EmojiMode)
	}
	switch c.DiacriticsMode {
	case DiacriticsConvert, DiacriticsRemove, DiacriticsKeep:
	default:
		return fmt.Errorf("normalize: unknown diacritics mode %q", c.DiacriticsMode)
	}
	switch c.ShaddaMode {
	case ShaddaDouble, ShaddaRemove:
	default:
		return fmt.Errorf("normalize: unknown shadda mode %q", c.ShaddaMode)
	}
	return nil
}
