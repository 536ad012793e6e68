package normalize

import (
	"strings"

	"github.com/RazwanSiktany/ckb-textify/numtext"
	"github.com/RazwanSiktany/ckb-textify/token"
	"github.com/RazwanSiktany/ckb-textify/translit"
)

// Fixed readings for web address pieces. Anything else is spelled or
// transliterated by length.
var webWords = map[string]string{
	"www":   "دەبڵیو دەبڵیو دەبڵیو",
	"com":   "کۆم",
	"net":   "نێت",
	"org":   "ئۆرگ",
	"info":  "ئینفۆ",
	"edu":   "ئی دی یو",
	"gov":   "جی ئۆ ڤی",
	"io":    "ئای ئۆ",
	"co":    "سی ئۆ",
	"krd":   "کەی ئاڕ دی",
	"iq":    "ئای کیو",
	"tv":    "تی ڤی",
	"gmail": "جیمەیڵ",
	"yahoo": "یاھوو",
	"mail":  "مەیڵ",
}

// WebNormalizer reads URLs and email addresses segment by segment:
// separators by name, known domain words from a fixed table, short
// Latin runs spelled, longer ones transliterated. The URL scheme is
// dropped.
type WebNormalizer struct{}

func NewWebNormalizer() *WebNormalizer { return &WebNormalizer{} }

func (w *WebNormalizer) Name() string  { return "web" }
func (w *WebNormalizer) Priority() int { return PriorityWeb }

func (w *WebNormalizer) Process(tokens []token.Token) []token.Token {
	for i := range tokens {
		t := &tokens[i]
		if t.Converted {
			continue
		}
		switch t.Type {
		case token.URL:
			t.Rewrite(readAddress(stripScheme(t.Text)), token.Word)
		case token.Email:
			t.Rewrite(readAddress(t.Text), token.Word)
		}
	}
	return tokens
}

func stripScheme(s string) string {
	lower := strings.ToLower(s)
	for _, scheme := range []string{"https://", "http://"} {
		if strings.HasPrefix(lower, scheme) {
			return s[len(scheme):]
		}
	}
	return s
}

func readAddress(s string) string {
	var parts []string
	for _, seg := range splitRuns(s) {
		if p := readSegment(seg); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

func readSegment(seg string) string {
	if name, ok := webWords[strings.ToLower(seg)]; ok {
		return name
	}
	switch {
	case isASCIIDigits(seg):
		if words, ok := numtext.Cardinal(seg); ok {
			return words
		}
		return numtext.Digits(seg)
	case isASCIILetters(seg):
		if len(seg) <= 2 {
			return spellOut(seg)
		}
		return translit.ToKurdish(seg)
	case len(seg) == 1:
		r := firstRune(seg)
		if name, ok := translit.SymbolName(r); ok {
			return name
		}
		return seg
	default:
		return translit.ToKurdish(seg)
	}
}
