// Package numtext converts numbers to Sorani Kurdish text.
//
// The package provides the building blocks the normalizer modules share:
//
//   - Integer turns an int64 into cardinal Kurdish text.
//   - Cardinal parses a plain ASCII digit string and converts it.
//   - Digits reads a digit string one digit at a time, preserving leading
//     zeros ("0750" keeps its zero distinguishable from a magnitude).
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Integer range is limited to ±10^18 (کوینتلیۆن). Callers needing larger
//     magnitudes phrase them as scientific notation themselves.
//   - Input to Cardinal must already have separators and signs stripped;
//     the tokenizer and the number module own that plumbing.
package numtext

import "strconv"

// Integer returns the Kurdish cardinal text for n.
// Zero returns "سفر". Negative numbers are prefixed with "سالب".
// Numbers with absolute value exceeding 10^18 return an empty string.
func Integer(n int64) string {
	return convert(n)
}

// Cardinal converts a plain ASCII digit string to Kurdish cardinal text.
// Returns false for empty input, non-digit characters, or more than 18
// digits.
func Cardinal(s string) (string, bool) {
	if s == "" || len(s) > 18 {
		return "", false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return "", false
	}
	return convert(n), true
}

// Digits reads s one digit at a time: "0025" -> "سفر سفر دوو پێنج".
// Non-digit runes are skipped.
func Digits(s string) string {
	return digits(s)
}
