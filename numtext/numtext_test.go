// Tests for the numtext package: Integer, Cardinal, Digits.
package numtext

import "testing"

func TestInteger(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input int64
		want  string
	}{
		{"zero", 0, "سفر"},
		{"one", 1, "یەک"},
		{"nine", 9, "نۆ"},
		{"ten", 10, "دە"},
		{"twelve", 12, "دوازدە"},
		{"fourteen", 14, "چواردە"},
		{"nineteen", 19, "نۆزدە"},
		{"twenty", 20, "بیست"},
		{"twenty-three", 23, "بیست و سێ"},
		{"forty-five", 45, "چل و پێنج"},
		{"sixty-seven", 67, "شەست و حەوت"},
		{"hundred", 100, "سەد"},
		{"one-two-three", 123, "سەد و بیست و سێ"},
		{"seven-fifty", 750, "حەوت سەد و پەنجا"},
		{"nine-sixty-four", 964, "نۆ سەد و شەست و چوار"},
		{"thousand", 1000, "ھەزار"},
		{"two thousand five hundred", 2500, "دوو ھەزار و پێنج سەد"},
		{"five thousand", 5000, "پێنج ھەزار"},
		{"million", 1_000_000, "یەک ملیۆن"},
		{"mixed millions", 2_300_095, "دوو ملیۆن و سێ سەد ھەزار و نەوەد و پێنج"},
		{"billion", 1_000_000_000, "یەک ملیار"},
		{"quintillion", 1_000_000_000_000_000_000, "یەک کوینتلیۆن"},
		{"negative five", -5, "سالب پێنج"},
		{"negative thousand", -1000, "سالب ھەزار"},
		{"out of range", maxAbs + 1, ""},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Integer(tt.input)
			if got != tt.want {
				t.Errorf("Integer(%d) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCardinal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"simple", "123", "سەد و بیست و سێ", true},
		{"zero", "0", "سفر", true},
		{"empty", "", "", false},
		{"non-digit", "12a", "", false},
		{"too long", "1234567890123456789", "", false},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Cardinal(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Cardinal(%q) = %q, %v, want %q, %v", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestDigits(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"leading zeros", "0025", "سفر سفر دوو پێنج"},
		{"single", "7", "حەوت"},
		{"skips separators", "1-2", "یەک دوو"},
		{"empty", "", ""},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Digits(tt.input)
			if got != tt.want {
				t.Errorf("Digits(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
