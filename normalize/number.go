package normalize

import (
	"strconv"
	"strings"

	"github.com/RazwanSiktany/ckb-textify/internal/ckbscript"
	"github.com/RazwanSiktany/ckb-textify/numtext"
	"github.com/RazwanSiktany/ckb-textify/token"
)

const (
	wordPositive = "موجەب"
	wordPoint    = "پۆینت"
	wordHalf     = "نیو"
	wordTimesTen = "کەڕەتی دە بە توانی"
)

// cardinalDigitLimit is the widest integer part read as a cardinal.
// Anything wider switches to scientific phrasing.
const cardinalDigitLimit = 18

// NumberNormalizer spells out bare numeric literals: integers, decimals,
// grouped thousands, scientific notation, and signed forms. Literals with
// leading zeros are read digit by digit.
type NumberNormalizer struct{}

func NewNumberNormalizer() *NumberNormalizer { return &NumberNormalizer{} }

func (n *NumberNormalizer) Name() string  { return "number" }
func (n *NumberNormalizer) Priority() int { return PriorityNumber }

func (n *NumberNormalizer) Process(tokens []token.Token) []token.Token {
	for i := range tokens {
		t := &tokens[i]
		if t.Type != token.Number || t.Converted {
			continue
		}
		words, ok := readNumber(t.Text)
		if !ok {
			continue
		}
		if p := prevIndex(tokens, i); p >= 0 && isUnarySign(tokens, p) {
			switch tokens[p].Text {
			case "-", "−":
				words = numtext.WordNegative + " " + words
			case "+":
				words = wordPositive + " " + words
			}
			tokens[p].Consume()
		}
		t.Rewrite(words, token.Word)
	}
	return tokens
}

// isUnarySign reports whether tokens[p] is a sign glyph that belongs to
// the literal after it rather than acting as a binary operator. A sign
// preceded by another numeric operand is binary and stays put.
func isUnarySign(tokens []token.Token, p int) bool {
	t := &tokens[p]
	if t.Converted || t.Type != token.Symbol {
		return false
	}
	switch t.Text {
	case "-", "−", "+":
	default:
		return false
	}
	pp := prevIndex(tokens, p)
	return pp < 0 || !isNumeric(&tokens[pp])
}

// readNumber renders a numeric literal as Kurdish words. The literal may
// carry eastern Arabic-Indic digits, thousands separators, a decimal
// point, or an exponent.
func readNumber(lit string) (string, bool) {
	s := ckbscript.FoldDigits(lit)
	s = strings.ReplaceAll(s, ",", "")

	if i := strings.IndexAny(s, "eE"); i > 0 {
		return readScientific(s[:i], s[i+1:])
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" {
		return "", false
	}

	// A padded literal like 0025 is an identifier, not a quantity.
	if len(whole) > 1 && whole[0] == '0' {
		if hasFrac {
			return numtext.Digits(whole) + " " + wordPoint + " " + numtext.Digits(frac), true
		}
		return numtext.Digits(whole), true
	}

	if len(whole) > cardinalDigitLimit {
		return readMagnitude(whole, frac)
	}
	if whole == "0" && leadingZeros(frac) > cardinalDigitLimit {
		return readTinyMagnitude(frac)
	}

	wholeWords, ok := numtext.Cardinal(whole)
	if !ok {
		return "", false
	}
	if !hasFrac || frac == "" {
		return wholeWords, true
	}
	if frac == "5" {
		return wholeWords + " و " + wordHalf, true
	}
	if frac[0] == '0' {
		return wholeWords + " " + wordPoint + " " + numtext.Digits(frac), true
	}
	fracWords, ok := numtext.Cardinal(frac)
	if !ok {
		fracWords = numtext.Digits(frac)
	}
	return wholeWords + " " + wordPoint + " " + fracWords, true
}

// readScientific renders mantissa and exponent around the times-ten
// phrase: 5.2e-10 becomes پێنج پۆینت دوو کەڕەتی دە بە توانی سالب دە.
func readScientific(mantissa, exponent string) (string, bool) {
	mWords, ok := readNumber(mantissa)
	if !ok {
		return "", false
	}
	sign := ""
	switch {
	case strings.HasPrefix(exponent, "-"):
		sign = numtext.WordNegative + " "
		exponent = exponent[1:]
	case strings.HasPrefix(exponent, "+"):
		exponent = exponent[1:]
	}
	eWords, ok := numtext.Cardinal(exponent)
	if !ok {
		return "", false
	}
	return mWords + " " + wordTimesTen + " " + sign + eWords, true
}

// readMagnitude reads an integer too wide for cardinal form as a
// normalized scientific phrase. Trailing zeros of the significand are
// dropped.
func readMagnitude(whole, frac string) (string, bool) {
	digits := strings.TrimRight(whole+frac, "0")
	if digits == "" {
		digits = "0"
	}
	mantissa := digits[:1]
	if len(digits) > 1 {
		mantissa += "." + digits[1:]
	}
	return readScientific(mantissa, strconv.Itoa(len(whole)-1))
}

// readTinyMagnitude reads a sub-unity decimal whose leading zeros exceed
// the cardinal limit, such as 0.00000000000000000000004.
func readTinyMagnitude(frac string) (string, bool) {
	zeros := leadingZeros(frac)
	digits := strings.TrimRight(frac[zeros:], "0")
	if digits == "" {
		return numtext.Integer(0), true
	}
	mantissa := digits[:1]
	if len(digits) > 1 {
		mantissa += "." + digits[1:]
	}
	return readScientific(mantissa, "-"+strconv.Itoa(zeros+1))
}

func leadingZeros(s string) int {
	n := 0
	for n < len(s) && s[n] == '0' {
		n++
	}
	return n
}
