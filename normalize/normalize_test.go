package normalize

import (
	"strings"
	"testing"

	"github.com/RazwanSiktany/ckb-textify/tokenizer"
)

// runPasses tokenizes input, applies the modules in order, and joins the
// surviving token texts with single spaces.
func runPasses(input string, mods ...Module) string {
	tokens := tokenizer.Tokenize(input)
	for _, m := range mods {
		tokens = m.Process(tokens)
	}
	var parts []string
	for i := range tokens {
		if tokens[i].Text != "" {
			parts = append(parts, tokens[i].Text)
		}
	}
	return strings.Join(parts, " ")
}

func TestModulesOrder(t *testing.T) {
	t.Parallel()

	mods := Modules(DefaultConfig())
	if len(mods) == 0 {
		t.Fatal("no modules built from default config")
	}
	for i := 1; i < len(mods); i++ {
		if mods[i].Priority() > mods[i-1].Priority() {
			t.Errorf("module %q (priority %d) sorted after %q (priority %d)",
				mods[i].Name(), mods[i].Priority(), mods[i-1].Name(), mods[i-1].Priority())
		}
	}
	if got := mods[len(mods)-1].Name(); got != "spacing" {
		t.Errorf("last module = %q, want spacing", got)
	}
}

func TestModulesAlwaysIncludeEmojiAndSpacing(t *testing.T) {
	t.Parallel()

	mods := Modules(Config{EmojiMode: EmojiIgnore})
	var names []string
	for _, m := range mods {
		names = append(names, m.Name())
	}
	if len(mods) != 3 {
		t.Fatalf("Modules(zero config) = %v, want emoji, script-tagger, and spacing only", names)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate(zero) = %v", err)
	}
	if cfg.EmojiMode != EmojiRemove || cfg.DiacriticsMode != DiacriticsConvert || cfg.ShaddaMode != ShaddaDouble {
		t.Errorf("Validate did not fill defaults: %+v", cfg)
	}

	bad := Config{EmojiMode: "explode"}
	if err := bad.Validate(); err == nil {
		t.Error("Validate accepted unknown emoji mode")
	}
	bad = Config{DiacriticsMode: "transliterate"}
	if err := bad.Validate(); err == nil {
		t.Error("Validate accepted unknown diacritics mode")
	}
}

func TestSplitSuffix(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, stem, suffix string
		ok               bool
	}{
		{"mە", "m", "ە", true},
		{"pmەکان", "pm", "ەکان", true},
		{"kmێک", "km", "ێک", true},
		{"شەودا", "شەو", "دا", true},
		{"م", "م", "", false},
		// The split is mechanical; callers validate the stem before
		// trusting it.
		{"باش", "با", "ش", true},
	}
	for _, tt := range cases {
		stem, suffix, ok := splitSuffix(tt.in)
		if stem != tt.stem || suffix != tt.suffix || ok != tt.ok {
			t.Errorf("splitSuffix(%q) = %q, %q, %v; want %q, %q, %v",
				tt.in, stem, suffix, ok, tt.stem, tt.suffix, tt.ok)
		}
	}
}

func TestAppendSuffix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text, suffix, want string
	}{
		{"مەتر", "ە", "مەترە"},
		{"کاتژمێر", "ێک", "کاتژمێرێک"},
		{"ئێوارە", "یە", "ئێوارەیە"},
		{"بەیانی", "ە", "بەیانییە"},
		{"بەیانی", "ەکە", "بەیانییەکە"},
		{"مەتر", "", "مەتر"},
	}
	for _, tt := range tests {
		if got := appendSuffix(tt.text, tt.suffix); got != tt.want {
			t.Errorf("appendSuffix(%q, %q) = %q, want %q", tt.text, tt.suffix, got, tt.want)
		}
	}
}
