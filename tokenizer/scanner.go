package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/RazwanSiktany/ckb-textify/internal/ckbscript"
	"github.com/RazwanSiktany/ckb-textify/token"
)

// Phone number length bounds (digits only, after any + prefix).
const (
	minIntlPhoneDigits  = 7
	maxIntlPhoneDigits  = 15
	minLocalPhoneDigits = 10
	maxLocalPhoneDigits = 11
)

// scan splits s into tokens using a rune-by-rune state machine.
// The caller guarantees s is non-empty.
func scan(s string) []token.Token {
	tokens := make([]token.Token, 0, len(s)/4+1)

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		// Whitespace: attach verbatim to the previous token.
		if unicode.IsSpace(r) {
			start := i
			i += size
			for i < len(s) {
				nr, ns := utf8.DecodeRuneInString(s[i:])
				if !unicode.IsSpace(nr) {
					break
				}
				i += ns
			}
			if len(tokens) == 0 {
				// Leading whitespace sentinel keeps the round-trip law.
				tokens = append(tokens, token.New("", token.Unknown))
			}
			tokens[len(tokens)-1].WhitespaceAfter += s[start:i]
			continue
		}

		// Rule 1: URL. http://, https:// or www. prefix.
		if r == 'h' || r == 'H' || r == 'w' || r == 'W' {
			if end, ok := scanURL(s, i); ok {
				tokens = append(tokens, token.New(s[i:end], token.URL))
				i = end
				continue
			}
		}

		// Rule 2: Email. Forward scan local@domain.tld from the start of
		// a letter/digit run.
		if isEmailLocalStart(r) {
			if end, ok := scanEmail(s, i); ok {
				tokens = append(tokens, token.New(s[i:end], token.Email))
				i = end
				continue
			}
		}

		if ckbscript.IsDigit(r) {
			// Rule 3: Date. Three digit fields joined by / - .
			if end, ok := scanDate(s, i); ok {
				tokens = append(tokens, token.New(s[i:end], token.Date))
				i = end
				continue
			}
			// Rule 4: Time. H:MM or HH:MM(:SS), optional inline am/pm.
			if end, ok := scanTime(s, i); ok {
				tokens = append(tokens, token.New(s[i:end], token.Time))
				i = end
				continue
			}
			// Rule 5: local phone (0NNNNNNNNNN).
			if r == '0' || r == '٠' || r == '۰' {
				if end, ok := scanLocalPhone(s, i); ok {
					tokens = append(tokens, token.New(s[i:end], token.Phone))
					i = end
					continue
				}
			}
			// Rule 6: numeric literal.
			end := scanNumber(s, i)
			tokens = append(tokens, token.New(s[i:end], token.Number))
			i = end
			continue
		}

		// Rule 5 (international): +NNNNNNN…
		if r == '+' {
			if end, ok := scanIntlPhone(s, i); ok {
				tokens = append(tokens, token.New(s[i:end], token.Phone))
				i = end
				continue
			}
		}

		// Sub/superscript digit runs.
		if isSubscriptDigit(r) {
			end := scanRun(s, i, isSubscriptDigit)
			tokens = append(tokens, token.New(s[i:end], token.Subscript))
			i = end
			continue
		}
		if isSuperscriptDigit(r) {
			end := scanRun(s, i, isSuperscriptDigit)
			tokens = append(tokens, token.New(s[i:end], token.Superscript))
			i = end
			continue
		}

		// Rule 7: Technical. #tag and @mention.
		if r == '#' || r == '@' {
			if end, ok := scanTechnical(s, i); ok {
				tokens = append(tokens, token.New(s[i:end], token.Technical))
				i = end
				continue
			}
		}

		// Rule 8: Word. Maximal letter run; letter-started alphanumeric
		// runs stay together ("A1"), harakat and joiners are absorbed so
		// vocalized Arabic words and tatweel-attached suffixes survive as
		// one token.
		if unicode.IsLetter(r) {
			end := scanWord(s, i)
			tokens = append(tokens, token.New(s[i:end], token.Word))
			i = end
			continue
		}

		// Fallback: single-rune Symbol.
		tokens = append(tokens, token.New(s[i:i+size], token.Symbol))
		i += size
	}

	return tokens
}

// scanURL checks for an http://, https:// or www. prefix at s[pos:] and
// consumes until whitespace, stripping one trailing punctuation mark.
func scanURL(s string, pos int) (end int, ok bool) {
	rest := s[pos:]
	prefix := 0
	lower := rest
	if len(lower) > 8 {
		lower = lower[:8]
	}
	lower = strings.ToLower(lower)
	switch {
	case strings.HasPrefix(lower, "https://"):
		prefix = len("https://")
	case strings.HasPrefix(lower, "http://"):
		prefix = len("http://")
	case strings.HasPrefix(lower, "www."):
		prefix = len("www.")
	default:
		return 0, false
	}

	end = pos + len(rest)
	for j := pos + prefix; j < len(s); {
		r, size := utf8.DecodeRuneInString(s[j:])
		if unicode.IsSpace(r) {
			end = j
			break
		}
		j += size
	}

	// Strip a single trailing punctuation mark: . , ! ?
	if end > pos+prefix {
		last, lastSize := utf8.DecodeLastRuneInString(s[pos:end])
		if last == '.' || last == ',' || last == '!' || last == '?' {
			end -= lastSize
		}
	}

	// A bare prefix is not a URL; www. additionally needs a dotted host.
	if end <= pos+prefix {
		return 0, false
	}
	if prefix == len("www.") && !strings.Contains(s[pos+prefix:end], ".") {
		return 0, false
	}
	return end, true
}

// scanEmail scans forward from the start of a candidate local part.
// Accepts local@domain.tld where the domain has a 2+ letter ASCII TLD.
// Non-ASCII letters are allowed in both parts (demo inputs contain
// internationalized hosts).
func scanEmail(s string, pos int) (end int, ok bool) {
	j := pos
	for j < len(s) {
		r, size := utf8.DecodeRuneInString(s[j:])
		if !isEmailLocalChar(r) {
			break
		}
		j += size
	}
	if j == pos || j >= len(s) || s[j] != '@' {
		return 0, false
	}

	domStart := j + 1
	j = domStart
	for j < len(s) {
		r, size := utf8.DecodeRuneInString(s[j:])
		if !isEmailDomainChar(r) {
			break
		}
		j += size
	}

	// Strip trailing dots before validating the TLD.
	for j > domStart && s[j-1] == '.' {
		j--
	}
	domain := s[domStart:j]
	lastDot := strings.LastIndex(domain, ".")
	if lastDot < 1 {
		return 0, false
	}
	tld := domain[lastDot+1:]
	if len(tld) < 2 {
		return 0, false
	}
	for _, r := range tld {
		if !unicode.IsLetter(r) {
			return 0, false
		}
	}
	return j, true
}

// scanDate matches digits/sep/digits/sep/digits with separators / - .
// Field widths follow the date module's heuristic bounds: 1–4, 1–2, 1–4.
func scanDate(s string, pos int) (end int, ok bool) {
	j, n1 := digitRun(s, pos)
	if n1 == 0 || n1 > 4 || j >= len(s) || !isDateSep(s[j]) {
		return 0, false
	}
	j2, n2 := digitRun(s, j+1)
	if n2 == 0 || n2 > 2 || j2 >= len(s) || !isDateSep(s[j2]) {
		return 0, false
	}
	j3, n3 := digitRun(s, j2+1)
	if n3 == 0 || n3 > 4 {
		return 0, false
	}
	// The last field must not continue into more digits or separators.
	if j3 < len(s) {
		r, _ := utf8.DecodeRuneInString(s[j3:])
		if ckbscript.IsDigit(r) || isDateSep(s[j3]) {
			return 0, false
		}
	}
	return j3, true
}

// scanTime matches H:MM or HH:MM with optional :SS and an optional inline
// am/pm marker ("12:30pm").
func scanTime(s string, pos int) (end int, ok bool) {
	j, n := digitRun(s, pos)
	if n == 0 || n > 2 || j >= len(s) || s[j] != ':' {
		return 0, false
	}
	j2, n2 := digitRun(s, j+1)
	if n2 != 2 {
		return 0, false
	}
	end = j2

	// Optional seconds.
	if end < len(s) && s[end] == ':' {
		j3, n3 := digitRun(s, end+1)
		if n3 == 2 {
			// Reject a third group that keeps going ("00:1A:2B" style runs
			// never reach here; "1:22:33:44" does).
			if j3 >= len(s) || s[j3] != ':' {
				end = j3
			}
		}
	}

	// Optional attached am/pm marker.
	if end+2 <= len(s) {
		m := strings.ToLower(s[end:min(end+2, len(s))])
		if (m == "am" || m == "pm") && !letterFollows(s, end+2) {
			end += 2
		}
	}
	return end, true
}

// scanLocalPhone matches a bare digit run of local-phone length starting
// with a zero.
func scanLocalPhone(s string, pos int) (end int, ok bool) {
	j, n := digitRun(s, pos)
	if n < minLocalPhoneDigits || n > maxLocalPhoneDigits {
		return 0, false
	}
	return j, true
}

// scanIntlPhone matches +digits with an international length.
func scanIntlPhone(s string, pos int) (end int, ok bool) {
	j, n := digitRun(s, pos+1)
	if n < minIntlPhoneDigits || n > maxIntlPhoneDigits {
		return 0, false
	}
	return j, true
}

// scanNumber reads a numeric literal: digits with comma-grouped thousands,
// an optional decimal part, and an optional signed exponent. Eastern Arabic
// digits and separators (U+066B, U+066C) participate.
func scanNumber(s string, pos int) int {
	i, _ := digitRun(s, pos)

	// Thousand separators: , or U+066C followed by exactly three digits.
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r != ',' && r != '٬' {
			break
		}
		j, n := digitRun(s, i+size)
		if n != 3 {
			break
		}
		if j < len(s) {
			nr, _ := utf8.DecodeRuneInString(s[j:])
			if ckbscript.IsDigit(nr) {
				break
			}
		}
		i = j
	}

	// Decimal part: . or U+066B followed by at least one digit.
	if i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == '.' || r == '٫' {
			if j, n := digitRun(s, i+size); n > 0 {
				i = j
			}
		}
	}

	// Exponent: e or E, optional sign, at least one digit.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if k, n := digitRun(s, j); n > 0 && !letterFollows(s, k) {
			i = k
		}
	}

	return i
}

// scanTechnical matches #tag and @mention forms.
func scanTechnical(s string, pos int) (end int, ok bool) {
	j := pos + 1
	for j < len(s) {
		r, size := utf8.DecodeRuneInString(s[j:])
		if !unicode.IsLetter(r) && !ckbscript.IsDigit(r) && r != '_' {
			break
		}
		j += size
	}
	if j == pos+1 {
		return 0, false
	}
	return j, true
}

// scanWord reads a word starting at a letter. The run absorbs letters,
// digits after the first letter, combining marks (harakat), tatweel, and
// zero-width joiners.
func scanWord(s string, pos int) int {
	i := pos
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case unicode.IsLetter(r), ckbscript.IsDigit(r):
		case unicode.Is(unicode.Mn, r):
		case r == ckbscript.ZWNJ, r == ckbscript.ZWJ:
		default:
			return i
		}
		i += size
	}
	return i
}

// digitRun consumes digits (ASCII or Eastern Arabic) starting at pos and
// returns the end offset and the number of digits consumed.
func digitRun(s string, pos int) (end, count int) {
	i := pos
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !ckbscript.IsDigit(r) {
			break
		}
		i += size
		count++
	}
	return i, count
}

// scanRun consumes a contiguous run of runes matching pred.
func scanRun(s string, pos int, pred func(rune) bool) int {
	i := pos
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !pred(r) {
			break
		}
		i += size
	}
	return i
}

// letterFollows reports whether a letter begins at s[pos:].
func letterFollows(s string, pos int) bool {
	if pos >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[pos:])
	return unicode.IsLetter(r)
}

func isDateSep(b byte) bool {
	return b == '/' || b == '-' || b == '.'
}

func isSubscriptDigit(r rune) bool {
	return r >= '₀' && r <= '₉'
}

func isSuperscriptDigit(r rune) bool {
	switch r {
	case '⁰', '¹', '²', '³':
		return true
	}
	return r >= '⁴' && r <= '⁹'
}

func isEmailLocalStart(r rune) bool {
	return unicode.IsLetter(r) || ckbscript.IsDigit(r)
}

// isEmailLocalChar returns true for characters valid in the local part of
// an email address.
func isEmailLocalChar(r rune) bool {
	if unicode.IsLetter(r) || ckbscript.IsDigit(r) {
		return true
	}
	return r == '.' || r == '_' || r == '%' || r == '+' || r == '-'
}

// isEmailDomainChar returns true for characters valid in the domain part.
func isEmailDomainChar(r rune) bool {
	if unicode.IsLetter(r) || ckbscript.IsDigit(r) {
		return true
	}
	return r == '.' || r == '-'
}
