package normalize

import "testing"

func TestPhoneNormalizer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, in, want string
	}{
		{
			"local eleven digits",
			"07501234567",
			"سفر حەوت سەد و پەنجا سەد و بیست و سێ چل و پێنج شەست و حەوت",
		},
		{
			"international",
			"+9647701234567",
			"کۆ نۆ سەد و شەست و چوار حەوت سەد و حەفتا سەد و بیست و سێ چل و پێنج شەست و حەوت",
		},
		{
			"inside sentence",
			"پەیوەندی بکە بە 07501234567 ەوە",
			"پەیوەندی بکە بە سفر حەوت سەد و پەنجا سەد و بیست و سێ چل و پێنج شەست و حەوت ەوە",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := runPasses(tt.in, NewPhoneNormalizer(false)); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPhonePauseMarkers(t *testing.T) {
	t.Parallel()

	got := runPasses("07501234567", NewPhoneNormalizer(true))
	want := "سفر حەوت سەد و پەنجا، سەد و بیست و سێ، چل و پێنج، شەست و حەوت"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGroupDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"07501234567", []string{"0750", "123", "45", "67"}},
		{"7701234567", []string{"770", "123", "45", "67"}},
		{"1234567", []string{"123", "4567"}},
		{"12345", []string{"123", "45"}},
		{"", nil},
	}
	for _, tt := range tests {
		got := groupDigits(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("groupDigits(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("groupDigits(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}
