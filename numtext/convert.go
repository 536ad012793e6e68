// Unexported conversion functions for Sorani Kurdish number-to-text
// conversion.
package numtext

import "strings"

const growConvert = 96 // estimated bytes for a full cardinal conversion

// convert converts an int64 to Kurdish cardinal text.
// Returns "" if abs(n) exceeds maxAbs.
func convert(n int64) string {
	if n > maxAbs || n < -maxAbs {
		return ""
	}
	if n == 0 {
		return WordZero
	}

	negative := n < 0
	if negative {
		n = -n
	}

	var b strings.Builder
	b.Grow(growConvert)

	if negative {
		b.WriteString(WordNegative)
		b.WriteByte(' ')
	}

	first := true
	for _, mag := range magnitudes {
		count := n / mag.value
		if count > 0 {
			if !first {
				b.WriteString(joiner)
			}
			// "یەک ھەزار" -> "ھەزار" (omit "یەک" before thousand only)
			if mag.value == 1_000 && count == 1 {
				b.WriteString(mag.word)
			} else {
				writeGroup(&b, count)
				b.WriteByte(' ')
				b.WriteString(mag.word)
			}
			n %= mag.value
			first = false
		}
	}

	if n > 0 {
		if !first {
			b.WriteString(joiner)
		}
		writeGroup(&b, n)
	}

	return b.String()
}

// writeGroup writes a number in [1, 999] as Kurdish text into b.
// Groups are joined with " و ": 123 -> "سەد و بیست و سێ".
func writeGroup(b *strings.Builder, n int64) {
	h := n / hundred
	if h == 1 {
		b.WriteString(wordHundred)
	} else if h > 1 {
		b.WriteString(ones[h])
		b.WriteByte(' ')
		b.WriteString(wordHundred)
	}

	r := n % hundred
	if r == 0 {
		return
	}
	if h > 0 {
		b.WriteString(joiner)
	}

	switch {
	case r < 10:
		b.WriteString(ones[r])
	case r < 20:
		b.WriteString(teens[r-10])
	default:
		b.WriteString(tens[r/10])
		if o := r % 10; o > 0 {
			b.WriteString(joiner)
			b.WriteString(ones[o])
		}
	}
}

// digits reads a digit string one digit at a time ("0025" -> "سفر سفر دوو پێنج").
// Runes that are not ASCII digits are skipped.
func digits(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 4)
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(ones[r-'0'])
	}
	return b.String()
}
