package normalize

import "testing"

func TestDateConversion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, in, want string
	}{
		{
			"year first",
			"2025/12/03",
			"سێی کانونی یەکەمی ساڵی دوو ھەزار و بیست و پێنج",
		},
		{
			"day first",
			"03/12/2025",
			"سێی کانونی یەکەمی ساڵی دوو ھەزار و بیست و پێنج",
		},
		{
			"dash separators",
			"15-4-2024",
			"پازدەی نیسانی ساڵی دوو ھەزار و بیست و چوار",
		},
		{
			"month first when second field exceeds twelve",
			"12/25/2025",
			"بیست و پێنجی کانونی یەکەمی ساڵی دوو ھەزار و بیست و پێنج",
		},
		{
			"month fallback above twelve",
			"13/13/2025",
			"سیازدەی مانگی سیازدەی ساڵی دوو ھەزار و بیست و پێنج",
		},
		{
			"year first with invalid month unchanged",
			"2025/13/03",
			"2025/13/03",
		},
		{
			"two-digit year unchanged",
			"03/12/25",
			"03/12/25",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := runPasses(tt.in, NewDateTimeNormalizer()); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTimeConversion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, in, want string
	}{
		{"bare half past", "12:30", "دوازدە و نیو"},
		{"bare on the hour", "7:00", "حەوت"},
		{"evening 24h clock", "18:00", "شەشی ئێوارە"},
		{"pm separate", "5:30 PM", "پێنج و نیوی دوای نیوەڕۆ"},
		{"pm attached", "5:30PM", "پێنج و نیوی دوای نیوەڕۆ"},
		{"kurdish morning", "7:15 بەیانی", "حەوت و پازدە خولەکی بەیانی"},
		{"dotted kurdish pm", "6:00 د.ن", "شەشی ئێوارە"},
		{"night before dawn", "2:00 شەو", "دووی شەو"},
		{"midnight", "12:00 شەو", "دوازدەی نیوەشەو"},
		{"marker with suffix", "5:30 ئێوارەیە", "پێنج و نیوی دوای نیوەڕۆیە"},
		{"izafe marker", "5:30ی ئێوارە", "پێنج و نیوی دوای نیوەڕۆ"},
		{"detached suffix after two-word marker", "9:00 دوای نیوەڕۆ دا", "نۆی شەودا"},
		{"seconds", "9:45:30 PM", "نۆ و چل و پێنج خولەکی شەو و سی چرکە"},
		{"minute overflow carries", "12:75", "یەک و پازدە خولەکی نیوەڕۆ"},
		{"midnight half past", "0:30", "دوازدە و نیوی نیوەشەو"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := runPasses(tt.in, NewDateTimeNormalizer()); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDayPeriod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hour int
		want string
	}{
		{0, "نیوەشەو"},
		{2, "شەو"},
		{5, "بەرەبەیان"},
		{8, "بەیانی"},
		{11, "پێش نیوەڕۆ"},
		{13, "نیوەڕۆ"},
		{16, "دوای نیوەڕۆ"},
		{19, "ئێوارە"},
		{22, "شەو"},
	}
	for _, tt := range tests {
		if got := dayPeriod(tt.hour); got != tt.want {
			t.Errorf("dayPeriod(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}
