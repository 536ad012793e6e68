package normalize

import "testing"

func TestWebNormalizer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, in, want string
	}{
		{
			"www domain",
			"www.rudaw.net",
			"دەبڵیو دەبڵیو دەبڵیو دۆت ڕوداو دۆت نێت",
		},
		{
			"scheme dropped",
			"https://kurdistan24.net",
			"کوردیستان بیست و چوار دۆت نێت",
		},
		{
			"email",
			"test@gmail.com",
			"تێست ئەت جیمەیڵ دۆت کۆم",
		},
		{
			"short segments spelled",
			"www.ab.io",
			"دەبڵیو دەبڵیو دەبڵیو دۆت ئەی بی دۆت ئای ئۆ",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := runPasses(tt.in, NewWebNormalizer()); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
