package normalize

import (
	"strings"

	"github.com/RazwanSiktany/ckb-textify/internal/ckbscript"
	"github.com/RazwanSiktany/ckb-textify/numtext"
	"github.com/RazwanSiktany/ckb-textify/token"
)

// PhoneNormalizer reads phone numbers group by group. International
// numbers open with کۆ and the country code; the remaining digits are
// grouped for a natural dictation rhythm. Leading zeros inside a group
// are read digit by digit.
type PhoneNormalizer struct {
	// pauseMarkers inserts a Kurdish comma between groups so a TTS
	// engine renders a short pause.
	pauseMarkers bool
}

func NewPhoneNormalizer(pauseMarkers bool) *PhoneNormalizer {
	return &PhoneNormalizer{pauseMarkers: pauseMarkers}
}

func (p *PhoneNormalizer) Name() string  { return "phone" }
func (p *PhoneNormalizer) Priority() int { return PriorityPhone }

func (p *PhoneNormalizer) Process(tokens []token.Token) []token.Token {
	for i := range tokens {
		t := &tokens[i]
		if t.Type != token.Phone || t.Converted {
			continue
		}
		if words, ok := p.readPhone(t.Text); ok {
			t.Rewrite(words, token.Word)
		}
	}
	return tokens
}

func (p *PhoneNormalizer) readPhone(text string) (string, bool) {
	intl := strings.HasPrefix(text, "+")
	digits := digitsOnly(ckbscript.FoldDigits(text))
	if digits == "" {
		return "", false
	}

	var parts []string
	if intl {
		cc := digits
		if len(cc) > 3 {
			cc = digits[:3]
		}
		words, ok := numtext.Cardinal(cc)
		if !ok {
			return "", false
		}
		parts = append(parts, "کۆ "+words)
		digits = digits[len(cc):]
	}
	for _, g := range groupDigits(digits) {
		parts = append(parts, readGroup(g))
	}

	sep := " "
	if p.pauseMarkers {
		sep = "، "
	}
	return strings.Join(parts, sep), true
}

// groupDigits splits a subscriber number into spoken groups. The common
// Iraqi lengths get fixed shapes; anything else falls back to threes.
func groupDigits(s string) []string {
	var shape []int
	switch len(s) {
	case 0:
		return nil
	case 11:
		shape = []int{4, 3, 2, 2}
	case 10:
		shape = []int{3, 3, 2, 2}
	default:
		for rest := len(s); rest > 0; rest -= 3 {
			if rest <= 4 {
				shape = append(shape, rest)
				break
			}
			shape = append(shape, 3)
		}
	}
	var groups []string
	for _, n := range shape {
		groups = append(groups, s[:n])
		s = s[n:]
	}
	return groups
}

// readGroup reads one digit group: leading zeros digit by digit, the
// remainder as a cardinal. 0750 reads سفر حەوت سەد و پەنجا.
func readGroup(g string) string {
	zeros := leadingZeros(g)
	if zeros == len(g) {
		return numtext.Digits(g)
	}
	rest, ok := numtext.Cardinal(g[zeros:])
	if !ok {
		return numtext.Digits(g)
	}
	if zeros == 0 {
		return rest
	}
	return numtext.Digits(g[:zeros]) + " " + rest
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
