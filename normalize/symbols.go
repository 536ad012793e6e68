package normalize

import "github.com/RazwanSiktany/ckb-textify/token"

// Symbols spoken when they survive the earlier passes.
var spokenSymbols = map[string]string{
	"&": "و",
	"°": "پلە",
	"%": "لە سەدا",
	"§": "بەش",
	"№": "ژمارە",
}

// Decorative glyphs a TTS engine has no use for.
var droppedSymbols = map[string]bool{
	"\"": true, "'": true, "`": true,
	"“": true, "”": true, "‘": true, "’": true,
	"«": true, "»": true,
	"(": true, ")": true, "[": true, "]": true, "{": true, "}": true,
	"*": true, "~": true, "|": true, "•": true, "·": true,
	"_": true, "^": true, "<": true, ">": true,
}

// Sentence punctuation kept for prosody. Runs of these collapse to the
// first glyph.
var sentencePunct = map[string]bool{
	".": true, ",": true, "!": true, "?": true,
	":": true, ";": true,
	"،": true, "؛": true, "؟": true,
}

// SymbolNormalizer handles the symbols no earlier pass claimed: a small
// set is spoken, decoration is dropped, repeated punctuation collapses.
type SymbolNormalizer struct{}

func NewSymbolNormalizer() *SymbolNormalizer { return &SymbolNormalizer{} }

func (s *SymbolNormalizer) Name() string  { return "symbols" }
func (s *SymbolNormalizer) Priority() int { return PrioritySymbols }

func (s *SymbolNormalizer) Process(tokens []token.Token) []token.Token {
	lastPunct := ""
	for i := range tokens {
		t := &tokens[i]
		if t.Empty() {
			continue
		}
		if t.Type != token.Symbol || t.Converted {
			lastPunct = ""
			continue
		}
		if word, ok := spokenSymbols[t.Text]; ok {
			t.Rewrite(word, token.Word)
			lastPunct = ""
			continue
		}
		if droppedSymbols[t.Text] {
			t.Consume()
			continue
		}
		if sentencePunct[t.Text] {
			if t.Text == lastPunct {
				t.Consume()
				continue
			}
			lastPunct = t.Text
			continue
		}
		lastPunct = ""
	}
	return tokens
}
