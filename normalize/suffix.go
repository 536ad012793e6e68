package normalize

import (
	"strings"

	"github.com/RazwanSiktany/ckb-textify/internal/ckbscript"
)

// grammarSuffixes are the Sorani attachments that may trail a recognized
// form (a time marker, a unit, an abbreviation). Longest first so that
// splitSuffix prefers ەکان over ە.
var grammarSuffixes = []string{
	"ەکان", "ەکە", "ەوە", "مان", "تان", "یان",
	"ێک", "یش", "یە", "دا",
	"ش", "م", "ت", "ی", "ە",
}

// splitSuffix splits s into a stem and a trailing grammar suffix.
// ok is false when no suffix matches or the match would consume the
// whole string. The split is purely mechanical; callers must validate
// the stem against their own tables before using it.
func splitSuffix(s string) (stem, suffix string, ok bool) {
	for _, suf := range grammarSuffixes {
		if strings.HasSuffix(s, suf) && len(s) > len(suf) {
			return strings.TrimSuffix(s, suf), suf, true
		}
	}
	return s, "", false
}

// isGrammarSuffix reports whether s is exactly one of the attachments.
func isGrammarSuffix(s string) bool {
	for _, suf := range grammarSuffixes {
		if s == suf {
			return true
		}
	}
	return false
}

// appendSuffix reattaches a grammar suffix to converted text, inserting
// the linking ی when the text ends in a vowel and the suffix starts with
// the vowel ە. A bare ە after a vowel contracts to یە.
func appendSuffix(text, suffix string) string {
	if suffix == "" {
		return text
	}
	if strings.HasPrefix(suffix, "ە") && ckbscript.EndsInVowel(text) {
		if suffix == "ە" {
			return text + "یە"
		}
		return text + "ی" + suffix
	}
	return text + suffix
}
