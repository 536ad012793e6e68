package normalize

import "testing"

func TestTechnicalCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, in, want string
	}{
		{"letter digit", "A1", "ئەی یەک"},
		{"vitamin", "B12", "بی یەک دوو"},
		{"hyphen code", "GPT-4", "جی پی تی داش 4"},
		{"code both sides", "A1-B2", "ئەی یەک داش بی دوو"},
		{"number range untouched", "10-20", "10 - 20"},
		{"plain word untouched", "baş", "baş"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := runPasses(tt.in, NewTechnicalNormalizer()); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTechnicalMarkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, in, want string
	}{
		{"hashtag long", "#kurdistan", "ھاشتاگ کوردیستان"},
		{"hashtag short", "#ai", "ھاشتاگ ئەی ئای"},
		{"mention", "@rudaw", "ئەت ڕوداو"},
		{"mention short", "@ali", "ئەت ئەی ئێڵ ئای"},
		{"underscored", "#kurdish_music", "ھاشتاگ کوردیش میوزیک"},
		{"digits in tag", "#news24", "ھاشتاگ نیوز دوو چوار"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := runPasses(tt.in, NewTechnicalNormalizer()); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
