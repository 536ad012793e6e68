// Package normalize contains the token transformation modules that turn
// mixed-script Kurdish text into a fully spoken Sorani form.
//
// Each module implements the Module interface and rewrites, merges, or
// consumes tokens in place. Modules never touch whitespace fields except
// where a merge absorbs a neighbor. The pipeline package runs the enabled
// modules in descending priority order and compacts consumed tokens
// between passes, so a module may rely on earlier modules having already
// tagged or converted tokens, but never on later ones.
//
// Module priorities, highest first:
//
//   - Web (98): URLs and email addresses
//   - Phone (96): phone number grouping
//   - DateTime (95): dates and clock times
//   - Technical (90): codes, hashtags, mentions
//   - UnitTagger (85): marks measurement units next to numbers
//   - Math (80): operators, equations, powers
//   - Currency (75): amounts with currency symbols or codes
//   - Units (70): converts tagged units to Kurdish words
//   - Number (60): bare numeric literals
//   - Emoji (50): always registered, gated by EmojiMode
//   - Symbols (40): leftover punctuation and symbol glyphs
//   - Diacritics (35): harakat-carrying Arabic words
//   - ScriptTagger (30): per-token script classification
//   - Linguistics (25): character folding and fixed replacements
//   - Transliteration (20): remaining Latin, Cyrillic, Greek words
//   - Spacing (0): final spacing repair, always registered
//
// Known limitations:
//   - Modules operate on the token stream of a single input; no state is
//     carried across Normalize calls.
//   - Disabling a tagger also disables the modules that depend on its
//     tags (Units without UnitTagger converts nothing).
package normalize

import (
	"github.com/RazwanSiktany/ckb-textify/internal/ckbscript"
	"github.com/RazwanSiktany/ckb-textify/token"
)

// Module is a single transformation pass over the token stream.
// Process receives the full slice and returns it, possibly grown or with
// tokens rewritten or consumed.
type Module interface {
	Name() string
	Priority() int
	Process(tokens []token.Token) []token.Token
}

// Module priorities. Higher runs earlier.
const (
	PriorityWeb         = 98
	PriorityPhone       = 96
	PriorityDateTime    = 95
	PriorityTechnical   = 90
	PriorityUnitTagger  = 85
	PriorityMath        = 80
	PriorityCurrency    = 75
	PriorityUnits       = 70
	PriorityNumber      = 60
	PriorityEmoji       = 50
	PrioritySymbols     = 40
	PriorityDiacritics  = 35
	PriorityScript      = 30
	PriorityLinguistics = 25
	PriorityTranslit    = 20
	PrioritySpacing     = 0
)

// Modules builds the pass list for cfg, sorted by descending priority.
// Emoji, ScriptTagger and Spacing are always present; Emoji is gated by
// cfg.EmojiMode rather than a toggle.
func Modules(cfg Config) []Module {
	var mods []Module
	if cfg.Web {
		mods = append(mods, NewWebNormalizer())
	}
	if cfg.Phone {
		mods = append(mods, NewPhoneNormalizer(cfg.PauseMarkers))
	}
	if cfg.DateTime {
		mods = append(mods, NewDateTimeNormalizer())
	}
	if cfg.Technical {
		mods = append(mods, NewTechnicalNormalizer())
	}
	if cfg.Units {
		mods = append(mods, NewUnitTagger(), NewUnitNormalizer())
	}
	if cfg.Math {
		mods = append(mods, NewMathNormalizer())
	}
	if cfg.Currency {
		mods = append(mods, NewCurrencyNormalizer())
	}
	if cfg.Numbers {
		mods = append(mods, NewNumberNormalizer())
	}
	mods = append(mods, NewEmojiNormalizer(cfg.EmojiMode))
	if cfg.Symbols {
		mods = append(mods, NewSymbolNormalizer())
	}
	if cfg.Diacritics {
		mods = append(mods, NewDiacriticsNormalizer(cfg.DiacriticsMode, cfg.ShaddaMode))
	}
	mods = append(mods, NewScriptTagger())
	if cfg.Linguistics {
		mods = append(mods, NewLinguisticsNormalizer())
	}
	if cfg.Transliteration {
		mods = append(mods, NewTranslitNormalizer())
	}
	mods = append(mods, NewSpacingNormalizer())

	// Registration order above already matches priority order; a stable
	// sort keeps ties (none today) deterministic if that changes.
	for i := 1; i < len(mods); i++ {
		for j := i; j > 0 && mods[j].Priority() > mods[j-1].Priority(); j-- {
			mods[j], mods[j-1] = mods[j-1], mods[j]
		}
	}
	return mods
}

// prevIndex returns the index of the nearest non-consumed token before i,
// or -1 when none exists.
func prevIndex(tokens []token.Token, i int) int {
	for j := i - 1; j >= 0; j-- {
		if !tokens[j].Empty() {
			return j
		}
	}
	return -1
}

// nextIndex returns the index of the nearest non-consumed token after i,
// or -1 when none exists.
func nextIndex(tokens []token.Token, i int) int {
	for j := i + 1; j < len(tokens); j++ {
		if !tokens[j].Empty() {
			return j
		}
	}
	return -1
}

// isNumeric reports whether t is a numeric literal usable as an operand:
// an unconverted Number token, or a token already spelled out from one.
func isNumeric(t *token.Token) bool {
	if t.Type == token.Number {
		return true
	}
	if t.Converted && ckbscript.IsDigit(firstRune(t.Original)) {
		return true
	}
	return false
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
