package normalize

import (
	"strconv"
	"strings"

	"github.com/RazwanSiktany/ckb-textify/internal/ckbscript"
	"github.com/RazwanSiktany/ckb-textify/numtext"
	"github.com/RazwanSiktany/ckb-textify/token"
)

type currencyInfo struct {
	name  string
	minor string
}

var currencySymbols = map[string]currencyInfo{
	"$": {"دۆلار", "سەنت"},
	"€": {"یۆرۆ", "سەنت"},
	"£": {"پاوەند", "پێنس"},
	"¥": {"یەن", "سەن"},
	"₺": {"لیرە", "قوروش"},
}

var currencyCodes = map[string]currencyInfo{
	"USD": {"دۆلاری ئەمریکی", "سەنت"},
	"EUR": {"یۆرۆ", "سەنت"},
	"GBP": {"پاوەندی ستەرلینی", "پێنس"},
	"JPY": {"یەنی یابانی", "سەن"},
	"TRY": {"لیرەی تورکی", "قوروش"},
	"IQD": {"دیناری عێراقی", "فلس"},
}

// CurrencyNormalizer reads amounts written with a currency symbol or ISO
// code on either side of the number. The decimal part becomes the minor
// unit: $12.50 reads دوازدە دۆلار و پەنجا سەنت.
type CurrencyNormalizer struct{}

func NewCurrencyNormalizer() *CurrencyNormalizer { return &CurrencyNormalizer{} }

func (c *CurrencyNormalizer) Name() string  { return "currency" }
func (c *CurrencyNormalizer) Priority() int { return PriorityCurrency }

func (c *CurrencyNormalizer) Process(tokens []token.Token) []token.Token {
	for i := range tokens {
		t := &tokens[i]
		if t.Type != token.Number || t.Converted {
			continue
		}
		j, info, ok := adjacentCurrency(tokens, i)
		if !ok {
			continue
		}
		words, ok := readAmount(t.Text, info)
		if !ok {
			continue
		}
		if j > i {
			t.WhitespaceAfter = tokens[j].WhitespaceAfter
		}
		tokens[j].Consume()
		t.Rewrite(words, token.Word)
	}
	return tokens
}

// adjacentCurrency finds a currency marker next to the number at i,
// checking the trailing position first.
func adjacentCurrency(tokens []token.Token, i int) (int, currencyInfo, bool) {
	if nx := nextIndex(tokens, i); nx >= 0 {
		if info, ok := currencyAt(&tokens[nx]); ok {
			return nx, info, true
		}
	}
	if p := prevIndex(tokens, i); p >= 0 {
		if info, ok := currencyAt(&tokens[p]); ok {
			return p, info, true
		}
	}
	return -1, currencyInfo{}, false
}

func currencyAt(t *token.Token) (currencyInfo, bool) {
	if t.Converted {
		return currencyInfo{}, false
	}
	switch t.Type {
	case token.Symbol:
		info, ok := currencySymbols[t.Text]
		return info, ok
	case token.Word:
		info, ok := currencyCodes[strings.ToUpper(t.Text)]
		return info, ok
	}
	return currencyInfo{}, false
}

func readAmount(lit string, info currencyInfo) (string, bool) {
	s := strings.ReplaceAll(ckbscript.FoldDigits(lit), ",", "")
	whole, frac, hasFrac := strings.Cut(s, ".")

	wholeWords, ok := numtext.Cardinal(whole)
	if !ok {
		return "", false
	}
	out := wholeWords + " " + info.name

	if hasFrac && frac != "" {
		// One decimal digit means tenths of the major unit: 12.5 is
		// twelve and a half, spoken as fifty minor units.
		if len(frac) == 1 {
			frac += "0"
		}
		if len(frac) > 2 {
			frac = frac[:2]
		}
		minor, err := strconv.Atoi(frac)
		if err != nil {
			return "", false
		}
		if minor > 0 {
			out += " و " + numtext.Integer(int64(minor)) + " " + info.minor
		}
	}
	return out, true
}
