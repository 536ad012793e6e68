package normalize

import (
	"strings"

	"github.com/RazwanSiktany/ckb-textify/internal/ckbscript"
	"github.com/RazwanSiktany/ckb-textify/token"
)

// UnitTagger marks measurement unit words that follow a numeric literal
// so the math pass leaves their power marks alone and the units pass can
// convert them. The word may carry a grammar suffix (10mە).
type UnitTagger struct{}

func NewUnitTagger() *UnitTagger { return &UnitTagger{} }

func (u *UnitTagger) Name() string  { return "unit-tagger" }
func (u *UnitTagger) Priority() int { return PriorityUnitTagger }

func (u *UnitTagger) Process(tokens []token.Token) []token.Token {
	for i := range tokens {
		t := &tokens[i]
		if t.Type != token.Word || t.Converted {
			continue
		}
		p := prevIndex(tokens, i)
		if p < 0 || !isNumeric(&tokens[p]) {
			continue
		}
		if _, _, ok := lookupUnit(t.Text); ok {
			t.Tags.Add(token.TagIsUnit)
		}
	}
	return tokens
}

// lookupUnit resolves a raw unit word to its Kurdish name, splitting off
// any trailing grammar suffix.
func lookupUnit(raw string) (name, suffix string, ok bool) {
	s := strings.ToLower(ckbscript.StripJoiners(raw))
	if name, ok := unitWords[s]; ok {
		return name, "", true
	}
	stem, sfx, found := splitSuffix(s)
	if !found {
		return "", "", false
	}
	if name, ok := unitWords[stem]; ok {
		return name, sfx, true
	}
	return "", "", false
}

// ScriptTagger classifies word tokens by writing system so the
// transliteration pass knows what to touch.
type ScriptTagger struct{}

func NewScriptTagger() *ScriptTagger { return &ScriptTagger{} }

func (s *ScriptTagger) Name() string  { return "script-tagger" }
func (s *ScriptTagger) Priority() int { return PriorityScript }

func (s *ScriptTagger) Process(tokens []token.Token) []token.Token {
	for i := range tokens {
		t := &tokens[i]
		if t.Type != token.Word || t.Empty() {
			continue
		}
		switch ckbscript.Detect(t.Text) {
		case ckbscript.ScriptLatin:
			t.Tags.Add(token.TagScriptLatin)
		case ckbscript.ScriptArabic:
			t.Tags.Add(token.TagScriptKurdish)
		default:
			t.Tags.Add(token.TagScriptOther)
		}
	}
	return tokens
}
