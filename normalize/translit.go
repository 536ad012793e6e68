package normalize

import (
	"github.com/RazwanSiktany/ckb-textify/token"
	"github.com/RazwanSiktany/ckb-textify/translit"
)

// TranslitNormalizer is the last word-level pass: whatever Latin,
// Cyrillic, or Greek words survived the earlier modules are rewritten in
// Kurdish letters.
type TranslitNormalizer struct{}

func NewTranslitNormalizer() *TranslitNormalizer { return &TranslitNormalizer{} }

func (tr *TranslitNormalizer) Name() string  { return "transliteration" }
func (tr *TranslitNormalizer) Priority() int { return PriorityTranslit }

func (tr *TranslitNormalizer) Process(tokens []token.Token) []token.Token {
	for i := range tokens {
		t := &tokens[i]
		if t.Type != token.Word || t.Empty() || t.Converted {
			continue
		}
		if t.Tags.Has(token.TagScriptKurdish) || t.Tags.Has(token.TagIsUnit) {
			continue
		}
		out := translit.ToKurdish(t.Text)
		if out != t.Text {
			t.Rewrite(out, token.Word)
		}
	}
	return tokens
}
