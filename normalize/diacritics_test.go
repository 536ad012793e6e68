package normalize

import "testing"

func TestDiacriticsConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, in, want string
	}{
		{"kasra sukun", "بِسْمِ", "بیسمی"},
		{"long alef", "کِتَاب", "کیتاب"},
		{"shadda doubles", "مُحَمَّد", "موحەممەد"},
		{"sun letter article", "ٱلشَّمْس", "ئەششەمس"},
		{"heavy ra before emphatic", "مِرْصَاد", "میڕساد"},
		{"light lam after kasra", "بِسْمِ ٱللَّهِ", "بیسمی للاھی"},
		{"tanwin", "شُكْرًا", "شوکڕەن"},
		{"plain word untouched", "سڵاو باش", "سڵاو باش"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := runPasses(tt.in, NewDiacriticsNormalizer(DiacriticsConvert, ShaddaDouble))
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiacriticsNunAssimilation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, in, want string
	}{
		{"iqlab", "مِنْ بَعْد", "میم بەعد"},
		{"idgham into ya", "مَنْ يَقُول", "مەی یەقوول"},
		{"plain final nun", "مِنْ ھات", "مین ھات"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := runPasses(tt.in, NewDiacriticsNormalizer(DiacriticsConvert, ShaddaDouble))
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiacriticsShaddaRemove(t *testing.T) {
	t.Parallel()

	got := runPasses("مُحَمَّد", NewDiacriticsNormalizer(DiacriticsConvert, ShaddaRemove))
	if got != "موحەمەد" {
		t.Errorf("got %q, want %q", got, "موحەمەد")
	}
}

func TestDiacriticsRemoveMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"کِتَاب", "کتاب"},
		{"ٱلشَّمْس", "الشمس"},
	}
	for _, tt := range tests {
		got := runPasses(tt.in, NewDiacriticsNormalizer(DiacriticsRemove, ShaddaDouble))
		if got != tt.want {
			t.Errorf("remove mode: got %q, want %q", got, tt.want)
		}
	}
}

func TestDiacriticsKeepMode(t *testing.T) {
	t.Parallel()

	in := "کِتَاب"
	if got := runPasses(in, NewDiacriticsNormalizer(DiacriticsKeep, ShaddaDouble)); got != in {
		t.Errorf("keep mode rewrote text: got %q", got)
	}
}

func TestDiacriticsSilentMark(t *testing.T) {
	t.Parallel()

	got := runPasses("خَلَوْا۟", NewDiacriticsNormalizer(DiacriticsConvert, ShaddaDouble))
	if got != "خەلەو" {
		t.Errorf("got %q, want %q", got, "خەلەو")
	}
}
