// Package translit converts foreign-script words into Sorani Kurdish
// letters for speaking aloud.
//
// Three layers are applied in order:
//
//   - Lexicon: a small embedded pronunciation table for common loanwords
//     ("phone" → "فۆن"). Exact whole-word matches only.
//   - Script folding: Cyrillic and Greek letters fold to a Latin reading;
//     accented Latin letters (except the Kurmanji circumflex vowels, which
//     carry meaning) fold to their base letter; ß folds to ss.
//   - Rules: Latin digraphs ("sh" → "ش") then single letters, with
//     word-initial overrides (initial r is ڕ; initial vowels gain the
//     hamza carrier ئ).
//
// The package also exposes the spoken English letter names used for
// character-by-character spell-out of codes and identifiers.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - CJK and other non-alphabetic scripts are returned unchanged; there is
//     no syllable reading for them.
//   - The rule layer is orthographic, not phonetic: English words missing
//     from the lexicon are read letter-sound by letter-sound.
package translit

import (
	"bufio"
	"bytes"
	_ "embed"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

//go:embed lexicon.txt
var lexiconData []byte

// lexicon maps lowercase loanwords to their Kurdish pronunciation.
var lexicon = loadLexicon()

func loadLexicon() map[string]string {
	m := make(map[string]string, 64)
	sc := bufio.NewScanner(bytes.NewReader(lexiconData))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		word, kurdish, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		m[word] = kurdish
	}
	return m
}

// accentFolder strips combining marks: "é" → "e". Applied per rune after
// the Kurmanji circumflex vowels have been handled.
var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// ToKurdish transliterates a single word into Sorani Kurdish letters.
// Words that contain no foldable letters are returned unchanged.
func ToKurdish(word string) string {
	if word == "" {
		return word
	}

	lower := strings.ToLower(word)
	if hit, ok := lexicon[lower]; ok {
		return hit
	}

	lower = strings.ReplaceAll(lower, "ß", "ss")
	lower = foldScripts(lower)

	if hit, ok := lexicon[lower]; ok {
		return hit
	}

	runes := []rune(lower)
	var b strings.Builder
	b.Grow(len(lower) * 2)

	for i := 0; i < len(runes); {
		// Digraphs first, so "sh" never reads as two letters.
		if i+1 < len(runes) {
			if out, ok := digraphs[string(runes[i:i+2])]; ok {
				b.WriteString(out)
				i += 2
				continue
			}
			// Collapse doubled letters ("ss", "ll") to one reading.
			if runes[i] == runes[i+1] {
				if _, ok := latinRules[runes[i]]; ok {
					runes = append(runes[:i], runes[i+1:]...)
					continue
				}
			}
		}

		r := runes[i]
		if i == 0 {
			if out, ok := initialRules[r]; ok {
				b.WriteString(out)
				i++
				continue
			}
		}
		if out, ok := latinRules[r]; ok {
			b.WriteString(out)
			i++
			continue
		}
		b.WriteRune(r)
		i++
	}

	return b.String()
}

// foldScripts rewrites Cyrillic and Greek letters to a Latin reading and
// strips accents from any remaining non-Kurmanji accented Latin letters.
func foldScripts(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Cyrillic, r):
			b.WriteString(cyrToLat[r])
		case unicode.Is(unicode.Greek, r):
			b.WriteString(greekToLat[r])
		case r > 127 && unicode.Is(unicode.Latin, r) && !isKurmanjiVowel(r):
			folded, _, err := transform.String(accentFolder, string(r))
			if err == nil {
				b.WriteString(folded)
			} else {
				b.WriteRune(r)
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isKurmanjiVowel reports whether r is a circumflex vowel that must keep
// its Kurdish reading instead of folding to the base letter.
func isKurmanjiVowel(r rune) bool {
	return r == 'ê' || r == 'î' || r == 'û' || r == 'ş' || r == 'ç'
}

// LetterName returns the spoken English name of an ASCII letter
// ("a" → "ئەی"). The second result is false for non-letters.
func LetterName(r rune) (string, bool) {
	name, ok := letterNames[unicode.ToLower(r)]
	return name, ok
}

// SymbolName returns the spoken name of a structural symbol ("." → "دۆت").
func SymbolName(r rune) (string, bool) {
	name, ok := symbolNames[r]
	return name, ok
}
