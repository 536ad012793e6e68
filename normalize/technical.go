package normalize

import (
	"strings"
	"unicode"

	"github.com/RazwanSiktany/ckb-textify/numtext"
	"github.com/RazwanSiktany/ckb-textify/token"
	"github.com/RazwanSiktany/ckb-textify/translit"
)

const (
	wordHashtag = "ھاشتاگ"
	wordAt      = "ئەت"
	wordDash    = "داش"
)

// TechnicalNormalizer spells out identifiers: hashtags, mentions,
// alphanumeric codes like A1 or B12, and hyphen-bound codes like GPT-4.
// Letters are read by their names, digits one by one.
type TechnicalNormalizer struct{}

func NewTechnicalNormalizer() *TechnicalNormalizer { return &TechnicalNormalizer{} }

func (tn *TechnicalNormalizer) Name() string  { return "technical" }
func (tn *TechnicalNormalizer) Priority() int { return PriorityTechnical }

func (tn *TechnicalNormalizer) Process(tokens []token.Token) []token.Token {
	for i := range tokens {
		t := &tokens[i]
		if t.Empty() || t.Converted {
			continue
		}
		switch t.Type {
		case token.Technical:
			tn.convertMarker(t)
		case token.Word:
			if isAlphanumericCode(t.Text) {
				t.Rewrite(spellOut(t.Text), token.Word)
				t.Tags.Add(token.TagSpelledOut)
			}
		case token.Symbol:
			if t.Text == "-" {
				tn.convertCodeDash(tokens, i)
			}
		}
	}
	return tokens
}

// convertMarker reads a hashtag or mention: the marker word, then the
// identifier. Short identifiers are spelled; longer ones are read as a
// word.
func (tn *TechnicalNormalizer) convertMarker(t *token.Token) {
	body := t.Text
	marker := ""
	switch {
	case strings.HasPrefix(body, "#"):
		marker, body = wordHashtag, body[1:]
	case strings.HasPrefix(body, "@"):
		marker, body = wordAt, body[1:]
	}
	if body == "" {
		return
	}
	t.Rewrite(marker+" "+readIdentifier(body), token.Word)
	t.Tags.Add(token.TagSpelledOut)
}

// convertCodeDash turns the hyphen of a tight code like GPT-4 into داش
// and spells its sides.
func (tn *TechnicalNormalizer) convertCodeDash(tokens []token.Token, i int) {
	t := &tokens[i]
	p, nx := i-1, i+1
	if p < 0 || nx >= len(tokens) ||
		tokens[p].WhitespaceAfter != "" || t.WhitespaceAfter != "" {
		return
	}
	if !isCodeSide(&tokens[p]) && !isCodeSide(&tokens[nx]) {
		return
	}
	// Number-number is a range, not a code.
	if tokens[p].Type == token.Number && tokens[nx].Type == token.Number {
		return
	}
	t.Rewrite(wordDash, token.Word)
	t.Tags.Add(token.TagSpelledOut)
	for _, j := range []int{p, nx} {
		side := &tokens[j]
		if side.Converted {
			continue
		}
		if side.Type == token.Word && (isAlphanumericCode(side.Text) || isAcronym(side.Text)) {
			side.Rewrite(spellOut(side.Text), token.Word)
			side.Tags.Add(token.TagSpelledOut)
		}
	}
}

// isCodeSide accepts a hyphen neighbor that is a code shape now or was
// already spelled out earlier in this pass.
func isCodeSide(t *token.Token) bool {
	if t.Tags.Has(token.TagSpelledOut) {
		return true
	}
	if t.Converted {
		return false
	}
	return isCodePart(t)
}

// isCodePart accepts the shapes that make a tight hyphen a code join.
func isCodePart(t *token.Token) bool {
	switch t.Type {
	case token.Number:
		return true
	case token.Word:
		return isAlphanumericCode(t.Text) || isAcronym(t.Text)
	}
	return false
}

// isAlphanumericCode reports whether s mixes ASCII letters and digits.
func isAlphanumericCode(s string) bool {
	var letters, digits bool
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits = true
		case r < 128 && unicode.IsLetter(r):
			letters = true
		default:
			return false
		}
	}
	return letters && digits
}

// isAcronym matches short all-uppercase ASCII words.
func isAcronym(s string) bool {
	if len(s) < 2 || len(s) > 5 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// readIdentifier reads a hashtag or mention body: short Latin runs are
// spelled, longer ones transliterated, digits read one by one.
func readIdentifier(s string) string {
	var parts []string
	for _, seg := range splitRuns(s) {
		switch {
		case seg == "_":
			// word separator, silent
		case isASCIIDigits(seg):
			parts = append(parts, numtext.Digits(seg))
		case len([]rune(seg)) <= 3 && isASCIILetters(seg):
			parts = append(parts, spellOut(seg))
		case isASCIILetters(seg):
			parts = append(parts, translit.ToKurdish(seg))
		default:
			parts = append(parts, seg)
		}
	}
	return strings.Join(parts, " ")
}

// splitRuns breaks an identifier into digit runs, letter runs, and
// single separators.
func splitRuns(s string) []string {
	var runs []string
	var cur strings.Builder
	var kind int // 0 none, 1 letters, 2 digits
	flush := func() {
		if cur.Len() > 0 {
			runs = append(runs, cur.String())
			cur.Reset()
		}
		kind = 0
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			if kind != 2 {
				flush()
				kind = 2
			}
			cur.WriteRune(r)
		case unicode.IsLetter(r):
			if kind != 1 {
				flush()
				kind = 1
			}
			cur.WriteRune(r)
		default:
			flush()
			runs = append(runs, string(r))
		}
	}
	flush()
	return runs
}

// spellOut reads a code character by character: letter names for Latin
// letters, digit words for digits, symbol names where known.
func spellOut(s string) string {
	var parts []string
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			parts = append(parts, numtext.Digits(string(r)))
		case r == '_':
			// silent
		default:
			lower := unicode.ToLower(r)
			if name, ok := translit.LetterName(lower); ok {
				parts = append(parts, name)
			} else if name, ok := translit.SymbolName(r); ok {
				parts = append(parts, name)
			} else {
				parts = append(parts, string(r))
			}
		}
	}
	return strings.Join(parts, " ")
}

func isASCIIDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

func isASCIILetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isASCIILetter(s[i]) {
			return false
		}
	}
	return len(s) > 0
}
