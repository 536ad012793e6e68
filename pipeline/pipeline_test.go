package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RazwanSiktany/ckb-textify/normalize"
)

func newDefault(t *testing.T) *Pipeline {
	t.Helper()
	p, err := Default()
	require.NoError(t, err)
	return p
}

func TestNewRejectsBadConfig(t *testing.T) {
	t.Parallel()

	_, err := New(normalize.Config{EmojiMode: "loud"})
	require.Error(t, err)
}

func TestNormalizeEndToEnd(t *testing.T) {
	t.Parallel()
	p := newDefault(t)

	tests := []struct {
		name, in, want string
	}{
		{"empty", "", ""},
		{"plain kurdish", "سڵاو باش", "سڵاو باش"},
		{"integer", "123", "سەد و بیست و سێ"},
		{"negative", "-5", "سالب پێنج"},
		{"half fraction", "1/2", "نیوە"},
		{"mixed fraction", "2 1/2", "دوو و نیو"},
		{"attached unit", "10m", "دە مەتر"},
		{"currency", "$12.50", "دوازدە دۆلار و پەنجا سەنت"},
		{"date", "2025/12/03", "سێی کانونی یەکەمی ساڵی دوو ھەزار و بیست و پێنج"},
		{"bare time", "12:30", "دوازدە و نیو"},
		{"time with marker", "5:30 PM", "پێنج و نیوی دوای نیوەڕۆ"},
		{"equation", "5 + 3 = 8", "پێنج کۆ سێ یەکسانە بە ھەشت"},
		{"isolated range", "12-14", "دوازدە بۆ چواردە"},
		{
			"operator chain",
			"5 + 3 - 2 * 4 / 2 = 10",
			"پێنج کۆ سێ کەم دوو کەڕەتی چوار دابەش دوو یەکسانە بە دە",
		},
		{
			"local phone",
			"07501234567",
			"سفر حەوت سەد و پەنجا سەد و بیست و سێ چل و پێنج شەست و حەوت",
		},
		{"website", "www.rudaw.net", "دەبڵیو دەبڵیو دەبڵیو دۆت ڕوداو دۆت نێت"},
		{"emoji removed", "باش 😂", "باش"},
		{"vocalized arabic", "بِسْمِ ٱللَّهِ", "بیسمی للاھی"},
		{"transliterated loanword", "Hello", "ھەڵۆ"},
		{"percent", "50%", "لە سەدا پەنجا"},
		{"celsius", "30°C", "سی پلەی سیلیزی"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, p.Normalize(tt.in))
		})
	}
}

func TestNormalizeWhitespaceCanonicalization(t *testing.T) {
	t.Parallel()
	p := newDefault(t)

	assert.Equal(t, "باش\nباش", p.Normalize("  باش \n\n  باش  "))
	assert.Equal(t, "باش باش", p.Normalize("باش\t\tباش"))
}

func TestNormalizeIsStable(t *testing.T) {
	t.Parallel()
	p := newDefault(t)

	inputs := []string{
		"123",
		"$12.50",
		"2025/12/03",
		"5:30 PM",
		"سڵاو باش",
		"07501234567",
	}
	for _, in := range inputs {
		once := p.Normalize(in)
		twice := p.Normalize(once)
		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestNormalizeDisabledModule(t *testing.T) {
	t.Parallel()

	cfg := normalize.DefaultConfig()
	cfg.Numbers = false
	cfg.Transliteration = false
	p, err := New(cfg)
	require.NoError(t, err)

	assert.Equal(t, "123", p.Normalize("123"))
}

func TestNormalizeConcurrent(t *testing.T) {
	t.Parallel()
	p := newDefault(t)

	done := make(chan string, 8)
	for i := 0; i < 8; i++ {
		go func() {
			done <- p.Normalize("123 و 12:30")
		}()
	}
	want := p.Normalize("123 و 12:30")
	for i := 0; i < 8; i++ {
		assert.Equal(t, want, <-done)
	}
}
