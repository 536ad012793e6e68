package normalize

import (
	"strings"

	"github.com/RazwanSiktany/ckb-textify/internal/ckbscript"
	"github.com/RazwanSiktany/ckb-textify/token"
)

// Arabic-script letters normalized to their Sorani forms.
var letterFolds = map[rune]rune{
	'ي': 'ی', 'ى': 'ی', 'ك': 'ک',
	'أ': 'ا', 'إ': 'ا', 'آ': 'ا',
	'ة': 'ە',
}

// Fixed rewrites applied after letter folding: abbreviations and names
// commonly written in Arabic orthography.
var fixedWords = map[string]string{
	"ھتد":     "ھەتا دوایی",
	"هتد":     "ھەتا دوایی",
	"علی":     "عەلی",
	"محمد":    "موحەممەد",
	"احمد":    "ئەحمەد",
	"حسن":     "حەسەن",
	"حسین":    "حوسێن",
	"عبدالله": "عەبدوڵڵا",
	"عبدوڵڵا": "عەبدوڵڵا",
}

// LinguisticsNormalizer folds Arabic letter variants into Sorani ones,
// strips tatweel, and applies the fixed word rewrites.
type LinguisticsNormalizer struct{}

func NewLinguisticsNormalizer() *LinguisticsNormalizer { return &LinguisticsNormalizer{} }

func (l *LinguisticsNormalizer) Name() string  { return "linguistics" }
func (l *LinguisticsNormalizer) Priority() int { return PriorityLinguistics }

func (l *LinguisticsNormalizer) Process(tokens []token.Token) []token.Token {
	for i := range tokens {
		t := &tokens[i]
		if t.Type != token.Word || t.Empty() || t.Converted {
			continue
		}
		out := foldWord(t.Text)
		if fixed, ok := fixedWords[out]; ok {
			out = fixed
		}
		if out != t.Text {
			t.Rewrite(out, token.Word)
		}
	}
	return tokens
}

func foldWord(s string) string {
	s = ckbscript.StripJoiners(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if f, ok := letterFolds[r]; ok {
			b.WriteRune(f)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
