package normalize

import (
	"strings"

	"github.com/RazwanSiktany/ckb-textify/token"
)

// unitWords maps unit abbreviations, lowercased, to Kurdish names.
var unitWords = map[string]string{
	"mm": "میلیمەتر",
	"cm": "سانتیمەتر",
	"m":  "مەتر",
	"km": "کیلۆمەتر",
	"mg": "میلیگرام",
	"g":  "گرام",
	"kg": "کیلۆگرام",
	"ml": "میلیلیتر",
	"l":  "لیتر",
	"s":  "چرکە",
	"ms": "میلیچرکە",
	"hr": "کاتژمێر",
	"h":  "کاتژمێر",
	"kb": "کیلۆبایت",
	"mb": "مێگابایت",
	"gb": "گێگابایت",
	"tb": "تێرابایت",
	"hz": "ھێرتز",
	"w":  "وات",
	"kw": "کیلۆوات",
	"v":  "ڤۆڵت",
}

// Power names for squared and cubed units.
var unitPowers = map[string]string{
	"2": "دووجا",
	"3": "سێجا",
}

var degreeScales = map[string]string{
	"c": "پلەی سیلیزی",
	"f": "پلەی فارەنھایت",
	"k": "پلەی کێلڤن",
}

// UnitNormalizer converts tagged unit words into Kurdish, handling
// compound rates (km/h), powered units (m², m^2), and degree marks
// (30°C). Runs after the math pass so untagged slashes and carets are
// already spoken operators.
type UnitNormalizer struct{}

func NewUnitNormalizer() *UnitNormalizer { return &UnitNormalizer{} }

func (u *UnitNormalizer) Name() string  { return "units" }
func (u *UnitNormalizer) Priority() int { return PriorityUnits }

func (u *UnitNormalizer) Process(tokens []token.Token) []token.Token {
	for i := range tokens {
		t := &tokens[i]
		if t.Empty() || t.Converted {
			continue
		}
		if t.Type == token.Symbol && t.Text == "°" {
			u.convertDegree(tokens, i)
			continue
		}
		if !t.Tags.Has(token.TagIsUnit) {
			continue
		}
		name, suffix, ok := lookupUnit(t.Text)
		if !ok {
			continue
		}
		if u.convertRate(tokens, i, name) {
			continue
		}
		if u.convertPower(tokens, i, name) {
			continue
		}
		t.Rewrite(appendSuffix(name, suffix), token.Word)
		t.Tags.Add(token.TagUnitProcessed)
	}
	return tokens
}

// convertRate handles unit/unit pairs: 120km/h reads
// کیلۆمەتر بۆ ھەر کاتژمێرێک after the number.
func (u *UnitNormalizer) convertRate(tokens []token.Token, i int, name string) bool {
	t := &tokens[i]
	slash := nextIndex(tokens, i)
	if slash < 0 || tokens[slash].Type != token.Symbol || tokens[slash].Text != "/" ||
		tokens[slash].Converted || t.WhitespaceAfter != "" {
		return false
	}
	den := nextIndex(tokens, slash)
	if den < 0 || tokens[den].Type != token.Word || tokens[den].Converted {
		return false
	}
	denName, denSuffix, ok := lookupUnit(tokens[den].Text)
	if !ok {
		return false
	}
	phrase := name + " بۆ ھەر " + appendSuffix(denName, "ێک")
	phrase = appendSuffix(phrase, denSuffix)
	t.Rewrite(phrase, token.Word)
	t.Tags.Add(token.TagUnitProcessed)
	t.WhitespaceAfter = tokens[den].WhitespaceAfter
	tokens[slash].Consume()
	tokens[den].Consume()
	return true
}

// convertPower handles m², m^2, and friends.
func (u *UnitNormalizer) convertPower(tokens []token.Token, i int, name string) bool {
	t := &tokens[i]
	nx := nextIndex(tokens, i)
	if nx < 0 {
		return false
	}

	var exp string
	last := nx
	switch {
	case tokens[nx].Type == token.Superscript && !tokens[nx].Converted:
		exp = superscriptDigits(tokens[nx].Text)
	case tokens[nx].Type == token.Symbol && tokens[nx].Text == "^":
		num := nextIndex(tokens, nx)
		if num < 0 || tokens[num].Type != token.Number {
			return false
		}
		exp = tokens[num].Text
		last = num
	default:
		return false
	}

	power, ok := unitPowers[exp]
	if !ok {
		return false
	}
	t.Rewrite(name+" "+power, token.Word)
	t.Tags.Add(token.TagUnitProcessed)
	t.WhitespaceAfter = tokens[last].WhitespaceAfter
	for j := nx; j <= last; j++ {
		tokens[j].Consume()
	}
	return true
}

// convertDegree handles the degree mark after a number, with an optional
// scale letter: 30°C reads سی پلەی سیلیزی.
func (u *UnitNormalizer) convertDegree(tokens []token.Token, i int) {
	t := &tokens[i]
	p := prevIndex(tokens, i)
	if p < 0 || !isNumeric(&tokens[p]) {
		return
	}
	nx := nextIndex(tokens, i)
	if nx >= 0 && tokens[nx].Type == token.Word && !tokens[nx].Converted {
		if scale, ok := degreeScales[strings.ToLower(tokens[nx].Text)]; ok {
			t.Rewrite(scale, token.Word)
			t.Tags.Add(token.TagUnitProcessed)
			t.WhitespaceAfter = tokens[nx].WhitespaceAfter
			tokens[nx].Consume()
			return
		}
	}
	t.Rewrite("پلە", token.Word)
	t.Tags.Add(token.TagUnitProcessed)
}
