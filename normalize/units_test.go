package normalize

import (
	"testing"

	"github.com/RazwanSiktany/ckb-textify/token"
	"github.com/RazwanSiktany/ckb-textify/tokenizer"
)

func unitPasses(in string) string {
	return runPasses(in, NewUnitTagger(), NewUnitNormalizer())
}

func TestUnitConversion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, in, want string
	}{
		{"attached meter", "10m", "10 مەتر"},
		{"spaced kilogram", "5 kg", "5 کیلۆگرام"},
		{"gigabyte", "500gb", "500 گێگابایت"},
		{"rate", "120km/h", "120 کیلۆمەتر بۆ ھەر کاتژمێرێک"},
		{"squared superscript", "50m²", "50 مەتر دووجا"},
		{"cubed caret", "2m^3", "2 مەتر سێجا"},
		{"celsius", "30°C", "30 پلەی سیلیزی"},
		{"bare degree", "45°", "45 پلە"},
		{"suffixed unit", "10mە", "10 مەترە"},
		{"no numeric context", "I am m", "I am m"},
		{"unit word without number", "m baş", "m baş"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := unitPasses(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnitTaggerTagsOnlyNumericContext(t *testing.T) {
	t.Parallel()

	tokens := tokenizer.Tokenize("10 km و km")
	tokens = NewUnitTagger().Process(tokens)

	var tagged int
	for i := range tokens {
		if tokens[i].Tags.Has(token.TagIsUnit) {
			tagged++
		}
	}
	if tagged != 1 {
		t.Errorf("tagged %d tokens, want 1 (only the km after the number)", tagged)
	}
}

func TestUnitProcessedTag(t *testing.T) {
	t.Parallel()

	tokens := tokenizer.Tokenize("10m")
	tokens = NewUnitTagger().Process(tokens)
	tokens = NewUnitNormalizer().Process(tokens)

	found := false
	for i := range tokens {
		if tokens[i].Tags.Has(token.TagUnitProcessed) {
			found = true
			if tokens[i].Text != "مەتر" {
				t.Errorf("processed unit text = %q, want %q", tokens[i].Text, "مەتر")
			}
		}
	}
	if !found {
		t.Error("no token carries the processed-unit tag")
	}
}
