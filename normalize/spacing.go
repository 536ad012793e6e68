package normalize

import "github.com/RazwanSiktany/ckb-textify/token"

var openers = map[string]bool{
	"(": true, "[": true, "{": true,
	"«": true, "“": true, "‘": true, "\"": true, "'": true,
}

var closers = map[string]bool{
	")": true, "]": true, "}": true,
	"»": true, "”": true, "’": true,
	".": true, ",": true, "!": true, "?": true, ":": true, ";": true,
	"،": true, "؛": true, "؟": true,
}

// SpacingNormalizer runs last and repairs token boundaries: a converted
// token that was written tight against its neighbor needs a space, or
// the spelled words would fuse. No space is added after an opening
// bracket or quote, nor before closing punctuation.
type SpacingNormalizer struct{}

func NewSpacingNormalizer() *SpacingNormalizer { return &SpacingNormalizer{} }

func (s *SpacingNormalizer) Name() string  { return "spacing" }
func (s *SpacingNormalizer) Priority() int { return PrioritySpacing }

func (s *SpacingNormalizer) Process(tokens []token.Token) []token.Token {
	for i := range tokens {
		t := &tokens[i]
		if t.Empty() || t.WhitespaceAfter != "" {
			continue
		}
		nx := nextIndex(tokens, i)
		if nx < 0 {
			continue
		}
		n := &tokens[nx]
		if !t.Converted && !n.Converted {
			continue
		}
		if openers[t.Text] || closers[n.Text] {
			continue
		}
		t.WhitespaceAfter = " "
	}
	return tokens
}
