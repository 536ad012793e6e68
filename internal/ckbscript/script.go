// Package ckbscript provides shared script-level helpers for Sorani Kurdish
// and Arabic-script text: vowel and harakat classification, tatweel and
// zero-width joiner stripping, Eastern Arabic digit folding, and
// script-family detection.
package ckbscript

import (
	"strings"
	"unicode"
)

// Tatweel is the Arabic kashida/filler letter used to attach Latin tokens to
// Kurdish suffixes in informal writing (e.g. "PMـە").
const Tatweel = 'ـ'

// Zero-width characters that writers insert between a stem and a suffix.
const (
	ZWNJ = '‌'
	ZWJ  = '‍'
)

// vowelFinals are the Kurdish letters that count as a final vowel when a
// grammatical suffix is attached. Ordered longest first so that "وو" wins
// over "و".
var vowelFinals = []string{"وو", "ا", "ە", "ۆ", "ێ", "ی", "و"}

// EndsInVowel reports whether s ends in a Kurdish vowel letter.
func EndsInVowel(s string) bool {
	for _, v := range vowelFinals {
		if strings.HasSuffix(s, v) {
			return true
		}
	}
	return false
}

// Harakat (Arabic vowel marks) recognized by the diacritics module.
const (
	Fathatan   = 'ً' // ً
	Dammatan   = 'ٌ' // ٌ
	Kasratan   = 'ٍ' // ٍ
	Fatha      = 'َ' // َ
	Damma      = 'ُ' // ُ
	Kasra      = 'ِ' // ِ
	Shadda     = 'ّ' // ّ
	Sukun      = 'ْ' // ْ
	DaggerAlef = 'ٰ' // ٰ
	WaslaAlef  = 'ٱ' // ٱ
	SilentMark = '۟' // ۟ small high rounded zero, silences its carrier
)

// IsHarakat reports whether r is an Arabic vowel or reading mark.
func IsHarakat(r rune) bool {
	switch r {
	case Fathatan, Dammatan, Kasratan, Fatha, Damma, Kasra, Shadda, Sukun,
		DaggerAlef, SilentMark:
		return true
	}
	return false
}

// HasHarakat reports whether s contains any harakat or a wasla alef.
func HasHarakat(s string) bool {
	for _, r := range s {
		if IsHarakat(r) || r == WaslaAlef {
			return true
		}
	}
	return false
}

// StripJoiners removes tatweel and zero-width joiners from s.
// Suffix matching compares token text with these fillers removed.
func StripJoiners(s string) string {
	if !strings.ContainsAny(s, "ـ‌‍") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == Tatweel || r == ZWNJ || r == ZWJ {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsDigit reports whether r is an ASCII, Arabic-Indic, or Extended
// Arabic-Indic digit.
func IsDigit(r rune) bool {
	return (r >= '0' && r <= '9') ||
		(r >= '٠' && r <= '٩') ||
		(r >= '۰' && r <= '۹')
}

// FoldDigits rewrites Arabic-Indic and Extended Arabic-Indic digits in s to
// their ASCII forms. The Arabic thousands separator (U+066C) is dropped and
// the Arabic decimal separator (U+066B) becomes a dot.
func FoldDigits(s string) string {
	changed := false
	for _, r := range s {
		if r >= '٠' && r <= '٬' || r >= '۰' && r <= '۹' {
			changed = true
			break
		}
	}
	if !changed {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '٠' && r <= '٩':
			b.WriteRune('0' + r - '٠')
		case r >= '۰' && r <= '۹':
			b.WriteRune('0' + r - '۰')
		case r == '٫': // arabic decimal separator
			b.WriteByte('.')
		case r == '٬': // arabic thousands separator
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Script identifies the dominant script family of a word.
type Script int

const (
	ScriptLatin Script = iota
	ScriptArabic
	ScriptOther
)

// Detect returns the script family with the most letters in s.
// Non-letters are ignored; an all-non-letter string reports ScriptOther.
func Detect(s string) Script {
	var latin, arabic, other int
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		switch {
		case r < 0x250 && unicode.Is(unicode.Latin, r):
			latin++
		case unicode.Is(unicode.Arabic, r):
			arabic++
		default:
			other++
		}
	}
	if arabic >= latin && arabic >= other && arabic > 0 {
		return ScriptArabic
	}
	if latin >= other && latin > 0 {
		return ScriptLatin
	}
	return ScriptOther
}
