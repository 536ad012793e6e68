package normalize

import (
	"testing"

	"github.com/RazwanSiktany/ckb-textify/token"
)

func TestSpacingAfterConvertedToken(t *testing.T) {
	t.Parallel()

	// "10m" converts to two words written tight against each other.
	ten := token.New("10", token.Number)
	ten.Rewrite("دە", token.Word)
	meter := token.New("m", token.Word)
	meter.Rewrite("مەتر", token.Word)

	tokens := NewSpacingNormalizer().Process([]token.Token{ten, meter})
	if tokens[0].WhitespaceAfter != " " {
		t.Errorf("WhitespaceAfter = %q, want single space", tokens[0].WhitespaceAfter)
	}
}

func TestSpacingKeepsTightPunctuation(t *testing.T) {
	t.Parallel()

	word := token.New("12:30", token.Time)
	word.Rewrite("دوازدە و نیو", token.Word)
	dot := token.New(".", token.Symbol)

	tokens := NewSpacingNormalizer().Process([]token.Token{word, dot})
	if tokens[0].WhitespaceAfter != "" {
		t.Errorf("space added before sentence punctuation: %q", tokens[0].WhitespaceAfter)
	}
}

func TestSpacingLeavesUnconvertedPairs(t *testing.T) {
	t.Parallel()

	a := token.New("باش", token.Word)
	b := token.New("ە", token.Word)

	tokens := NewSpacingNormalizer().Process([]token.Token{a, b})
	if tokens[0].WhitespaceAfter != "" {
		t.Errorf("space added between unconverted tokens: %q", tokens[0].WhitespaceAfter)
	}
}

func TestSpacingSkipsOpeners(t *testing.T) {
	t.Parallel()

	open := token.New("(", token.Symbol)
	num := token.New("10", token.Number)
	num.Rewrite("دە", token.Word)

	tokens := NewSpacingNormalizer().Process([]token.Token{open, num})
	if tokens[0].WhitespaceAfter != "" {
		t.Errorf("space added after opening bracket: %q", tokens[0].WhitespaceAfter)
	}
}
