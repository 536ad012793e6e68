// Package tokenizer lexes mixed-script text into the ordered token sequence
// the normalization pipeline operates on, and reassembles tokens back into
// text.
//
// Lexing is rigid-pattern first, so that generic word/symbol rules never
// swallow structured forms. Priority order:
//
//   - URL (http://, https://, www.)
//   - Email (backtrack from @)
//   - Phone (international +NNN… and local 0NNNNNNNNNN forms)
//   - Date (digit/separator/digit/separator/digit, separators / - .)
//   - Time (digit:digit, optional :seconds, optional inline am/pm)
//   - Number (integer, comma-grouped, decimal, scientific; Eastern Arabic
//     digits included)
//   - Subscript and superscript digit runs
//   - Technical (#tag, @mention)
//   - Word (maximal script-agnostic letter run, harakat and tatweel
//     included), then Symbol (single rune) as the catch-all
//
// Whitespace is never a token: each run of whitespace attaches verbatim to
// the preceding token's WhitespaceAfter, so Detokenize(Tokenize(s)) == s on
// an unmodified token list. Input that begins with whitespace produces a
// leading empty sentinel token carrying it; pipeline compaction drops the
// sentinel once modules have run.
//
// All functions are safe for concurrent use by multiple goroutines.
package tokenizer

import (
	"strings"

	"github.com/RazwanSiktany/ckb-textify/token"
)

// Tokenize splits text into an ordered token sequence.
// It never fails: spans that match no rigid pattern fall through to
// Word/Symbol tokens.
func Tokenize(s string) []token.Token {
	if s == "" {
		return nil
	}
	return scan(s)
}

// Detokenize reassembles tokens into text by concatenating each token's
// display text and trailing whitespace. On an unmodified token list this is
// the exact inverse of Tokenize.
func Detokenize(tokens []token.Token) string {
	var b strings.Builder
	for i := range tokens {
		b.WriteString(tokens[i].Text)
		b.WriteString(tokens[i].WhitespaceAfter)
	}
	return b.String()
}
