package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/RazwanSiktany/ckb-textify/internal/ckbscript"
	"github.com/RazwanSiktany/ckb-textify/token"
)

// foldArabic maps Arabic letters with no Sorani counterpart to the
// nearest Kurdish letter. Applied when a vocalized word is rendered.
var foldArabic = map[rune]rune{
	'ص': 'س', 'ض': 'ز', 'ط': 'ت', 'ظ': 'ز',
	'ث': 'س', 'ذ': 'ز', 'ي': 'ی', 'ى': 'ی',
	'ك': 'ک', 'ه': 'ھ', 'ة': 'ە',
}

// emphatics trigger tafkhim on a preceding silent ر.
var emphatics = map[rune]bool{
	'ص': true, 'ض': true, 'ط': true, 'ظ': true,
	'ق': true, 'خ': true, 'غ': true,
}

// sunLetters assimilate the ل of the definite article.
var sunLetters = map[rune]bool{
	'ت': true, 'ث': true, 'د': true, 'ذ': true, 'ر': true,
	'ز': true, 'س': true, 'ش': true, 'ص': true, 'ض': true,
	'ط': true, 'ظ': true, 'ل': true, 'ن': true,
}

var harakatRange = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x064B, Hi: 0x0652, Stride: 1}, // tanwin through sukun
		{Lo: 0x0670, Hi: 0x0670, Stride: 1}, // dagger alef
		{Lo: 0x06DF, Hi: 0x06DF, Stride: 1}, // silencing mark
	},
}

var harakatStripper = runes.Remove(runes.In(harakatRange))

// Vowel categories threaded between words. The preceding word's final
// vowel decides wasla elision and the weight of the lam in the name of
// God.
type vowelClass int

const (
	vowelNone vowelClass = iota
	vowelA               // ا ە ۆ
	vowelI               // ی ێ
	vowelU               // و
)

func finalVowelClass(s string) vowelClass {
	r := lastRune(s)
	switch r {
	case 'ا', 'ە', 'ۆ':
		return vowelA
	case 'ی', 'ێ':
		return vowelI
	case 'و':
		return vowelU
	}
	return vowelNone
}

func lastRune(s string) rune {
	var last rune
	for _, r := range s {
		last = r
	}
	return last
}

// DiacriticsNormalizer rewrites harakat-carrying Arabic words into plain
// Kurdish letters following recitation rules: short vowels become vowel
// letters, shadda doubles, the definite article assimilates before sun
// letters, ر takes its heavy form ڕ in tafkhim positions, and a final
// nun with sukun assimilates into the next word (iqlab, idgham).
//
// The pass walks left to right carrying the previous word's final vowel;
// it decides whether a wasla alef is voiced and whether the lam of ٱللە
// is heavy or light.
type DiacriticsNormalizer struct {
	mode   DiacriticsMode
	shadda ShaddaMode
}

func NewDiacriticsNormalizer(mode DiacriticsMode, shadda ShaddaMode) *DiacriticsNormalizer {
	return &DiacriticsNormalizer{mode: mode, shadda: shadda}
}

func (d *DiacriticsNormalizer) Name() string  { return "diacritics" }
func (d *DiacriticsNormalizer) Priority() int { return PriorityDiacritics }

func (d *DiacriticsNormalizer) Process(tokens []token.Token) []token.Token {
	if d.mode == DiacriticsKeep {
		return tokens
	}
	prev := vowelNone
	for i := range tokens {
		t := &tokens[i]
		if t.Empty() {
			continue
		}
		if t.Type != token.Word {
			prev = vowelNone
			continue
		}
		if t.Converted || !ckbscript.HasHarakat(t.Text) {
			prev = finalVowelClass(t.Text)
			continue
		}
		var out string
		if d.mode == DiacriticsRemove {
			out, _, _ = transform.String(harakatStripper, t.Text)
			out = strings.ReplaceAll(out, string(ckbscript.WaslaAlef), "ا")
		} else {
			out = d.convertWord(t.Text, prev, nextWordInitial(tokens, i))
		}
		t.Rewrite(out, token.Word)
		prev = finalVowelClass(out)
	}
	return tokens
}

// nextWordInitial returns the first letter of the following word, used
// for the cross-word nun rules.
func nextWordInitial(tokens []token.Token, i int) rune {
	nx := nextIndex(tokens, i)
	if nx < 0 || tokens[nx].Type != token.Word {
		return 0
	}
	return firstRune(ckbscript.StripJoiners(tokens[nx].Text))
}

// marks carried by one base letter.
type letterMarks struct {
	shadda bool
	vowel  rune // fatha, kasra, damma, tanwin, sukun, or dagger alef
	silent bool
}

func (d *DiacriticsNormalizer) convertWord(raw string, prev vowelClass, nextInitial rune) string {
	rs := []rune(ckbscript.StripJoiners(raw))
	var b strings.Builder

	// current returns the vowel context for the heavy/light decisions,
	// falling back to the previous word when nothing is emitted yet.
	current := func() vowelClass {
		if c := finalVowelClass(b.String()); c != vowelNone {
			return c
		}
		if b.Len() > 0 {
			return vowelNone
		}
		return prev
	}

	i := 0
	for i < len(rs) {
		r := rs[i]
		if ckbscript.IsHarakat(r) {
			i++
			continue
		}
		m, next := collectMarks(rs, i+1)

		if m.silent {
			i = next
			continue
		}

		switch {
		case r == ckbscript.WaslaAlef:
			// Voiced only after a pause; elided after a vowel.
			if i == 0 && prev == vowelNone {
				b.WriteString("ئە")
			}

		case r == 'ا' && i == 0:
			if m.vowel != 0 {
				b.WriteString("ئ")
				b.WriteString(vowelLetters(m.vowel))
			} else {
				b.WriteString("ئە")
			}

		case r == 'ل' && isAllahSequence(rs, i):
			if current() == vowelI {
				b.WriteString("للا")
			} else {
				b.WriteString("ڵڵا")
			}
			i = d.writeAllahTail(&b, rs, i)
			continue

		case r == 'ل' && isArticleLam(rs, i):
			// Article lam before a sun letter assimilates away; the
			// shadda on the sun letter restores the length.

		case r == 'ر':
			if d.heavyRa(rs, i, m, current()) {
				b.WriteRune('ڕ')
			} else {
				b.WriteRune('ر')
			}
			d.writeVowel(&b, rs, &i, next, m)
			continue

		case r == 'ن' && next >= len(rs) && m.vowel == ckbscript.Sukun:
			// Cross-word assimilation of the silent final nun.
			switch nextInitial {
			case 'ب':
				b.WriteRune('م') // iqlab
			case 'ی', 'ي', 'و':
				b.WriteRune(foldLetter(nextInitial)) // idgham
			default:
				b.WriteRune('ن')
			}

		case r == 'أ', r == 'إ', r == 'ؤ', r == 'ئ', r == 'ء':
			b.WriteRune('ئ')
			d.writeVowel(&b, rs, &i, next, m)
			continue

		case r == 'آ':
			b.WriteString("ئا")

		default:
			letter := foldLetter(r)
			b.WriteRune(letter)
			if m.shadda && d.shadda == ShaddaDouble {
				b.WriteRune(letter)
			}
			d.writeVowel(&b, rs, &i, next, m)
			continue
		}
		i = next
	}
	return b.String()
}

// writeVowel emits the vowel letter for the marks at rs[i] and advances
// i past any long-vowel carrier that the mark already spells.
func (d *DiacriticsNormalizer) writeVowel(b *strings.Builder, rs []rune, i *int, next int, m letterMarks) {
	*i = next

	carrier := rune(0)
	if next < len(rs) && !ckbscript.IsHarakat(rs[next]) {
		cm, _ := collectMarks(rs, next+1)
		if cm.vowel == 0 && !cm.shadda {
			carrier = rs[next]
		}
	}

	switch m.vowel {
	case ckbscript.Fatha:
		if carrier == 'ا' {
			b.WriteRune('ا')
			*i = next + 1
			return
		}
		b.WriteRune('ە')
	case ckbscript.Kasra:
		b.WriteRune('ی')
		if carrier == 'ي' || carrier == 'ی' {
			*i = next + 1
		}
	case ckbscript.Damma:
		b.WriteRune('و')
	case ckbscript.DaggerAlef:
		b.WriteRune('ا')
	case ckbscript.Fathatan:
		b.WriteString("ەن")
		if carrier == 'ا' {
			*i = next + 1
		}
	case ckbscript.Kasratan:
		b.WriteString("ین")
	case ckbscript.Dammatan:
		b.WriteString("ون")
	}
}

// writeAllahTail renders the ها of the divine name after the doubled lam
// and returns the index past the word.
func (d *DiacriticsNormalizer) writeAllahTail(b *strings.Builder, rs []rune, i int) int {
	j := i
	for j < len(rs) && rs[j] != 'ه' && rs[j] != 'ھ' {
		j++
	}
	if j == len(rs) {
		return j
	}
	m, next := collectMarks(rs, j+1)
	b.WriteRune('ھ')
	switch m.vowel {
	case ckbscript.Fatha:
		b.WriteRune('ە')
	case ckbscript.Kasra:
		b.WriteRune('ی')
	case ckbscript.Damma:
		b.WriteRune('و')
	}
	return next
}

// collectMarks gathers the harakat that follow a base letter starting at
// position j and returns the index of the next base letter.
func collectMarks(rs []rune, j int) (letterMarks, int) {
	var m letterMarks
	for j < len(rs) && ckbscript.IsHarakat(rs[j]) {
		switch rs[j] {
		case ckbscript.Shadda:
			m.shadda = true
		case ckbscript.SilentMark:
			m.silent = true
		case ckbscript.Sukun, ckbscript.Fatha, ckbscript.Kasra, ckbscript.Damma,
			ckbscript.Fathatan, ckbscript.Kasratan, ckbscript.Dammatan,
			ckbscript.DaggerAlef:
			m.vowel = rs[j]
		}
		j++
	}
	return m, j
}

// isArticleLam reports whether the lam at position i is a definite
// article assimilating into a shadda-marked sun letter, i.e. the word
// starts ال or ٱل.
func isArticleLam(rs []rune, i int) bool {
	if i != 1 || (rs[0] != 'ا' && rs[0] != ckbscript.WaslaAlef) {
		return false
	}
	m, next := collectMarks(rs, i+1)
	if m.vowel != 0 && m.vowel != ckbscript.Sukun {
		return false
	}
	if next >= len(rs) || !sunLetters[rs[next]] {
		return false
	}
	nm, _ := collectMarks(rs, next+1)
	return nm.shadda
}

// isAllahSequence reports whether a doubled lam leading to ه starts at i.
func isAllahSequence(rs []rune, i int) bool {
	if i+1 >= len(rs) || rs[i+1] != 'ل' {
		return false
	}
	_, next := collectMarks(rs, i+2)
	return next < len(rs) && (rs[next] == 'ه' || rs[next] == 'ھ')
}

// heavyRa applies tafkhim: ر is heavy with an a- or u-vowel, and when
// silent it follows the preceding vowel unless an emphatic letter comes
// next.
func (d *DiacriticsNormalizer) heavyRa(rs []rune, i int, m letterMarks, prev vowelClass) bool {
	switch m.vowel {
	case ckbscript.Fatha, ckbscript.Damma, ckbscript.Fathatan, ckbscript.Dammatan,
		ckbscript.DaggerAlef:
		return true
	case ckbscript.Kasra, ckbscript.Kasratan:
		return false
	}
	// Silent ر.
	_, next := collectMarks(rs, i+1)
	if next < len(rs) && emphatics[rs[next]] {
		return true
	}
	return prev == vowelA || prev == vowelU
}

func vowelLetters(v rune) string {
	switch v {
	case ckbscript.Fatha:
		return "ە"
	case ckbscript.Kasra:
		return "ی"
	case ckbscript.Damma:
		return "و"
	case ckbscript.Fathatan:
		return "ەن"
	case ckbscript.Kasratan:
		return "ین"
	case ckbscript.Dammatan:
		return "ون"
	case ckbscript.DaggerAlef:
		return "ا"
	}
	return ""
}

func foldLetter(r rune) rune {
	if f, ok := foldArabic[r]; ok {
		return f
	}
	return r
}
