package normalize

import "github.com/RazwanSiktany/ckb-textify/token"

// Kurdish descriptions for the emoji worth speaking. Anything outside
// this table is dropped even in convert mode.
var emojiNames = map[rune]string{
	'😀': "پێکەنین",
	'😂': "پێکەنینی بەکول",
	'😊': "زەردەخەنە",
	'😍': "دڵدان",
	'😢': "گریان",
	'😭': "گریانی بەکول",
	'❤': "دڵ",
	'👍': "بەجێیە",
	'👎': "نابەجێیە",
	'🔥': "ئاگر",
	'🎉': "ئاھەنگ",
	'🙏': "سوپاس",
}

// EmojiNormalizer is always registered; the mode decides whether emoji
// are removed, described, or kept.
type EmojiNormalizer struct {
	mode EmojiMode
}

func NewEmojiNormalizer(mode EmojiMode) *EmojiNormalizer {
	return &EmojiNormalizer{mode: mode}
}

func (e *EmojiNormalizer) Name() string  { return "emoji" }
func (e *EmojiNormalizer) Priority() int { return PriorityEmoji }

func (e *EmojiNormalizer) Process(tokens []token.Token) []token.Token {
	if e.mode == EmojiIgnore {
		return tokens
	}
	for i := range tokens {
		t := &tokens[i]
		if t.Empty() || t.Converted {
			continue
		}
		if t.Type != token.Symbol && t.Type != token.Unknown {
			continue
		}
		if !isEmoji(t.Text) {
			continue
		}
		if e.mode == EmojiRemove {
			t.Consume()
			continue
		}
		if name, ok := emojiNames[firstRune(t.Text)]; ok {
			t.Rewrite(name, token.Word)
		} else {
			t.Consume()
		}
	}
	return tokens
}

// isEmoji reports whether every rune of s is an emoji codepoint or a
// variation selector.
func isEmoji(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isEmojiRune(r) {
			return false
		}
	}
	return true
}

func isEmojiRune(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1FAFF: // pictographs, emoticons, symbols
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols, dingbats
		return true
	case r >= 0x1F000 && r <= 0x1F0FF: // tiles and cards
		return true
	case r == 0xFE0F || r == 0x200D: // variation selector, joiner
		return true
	case r == 0x2764: // heavy heart
		return true
	}
	return false
}
