package token

import "testing"

func TestNewKeepsOriginal(t *testing.T) {
	t.Parallel()

	tok := New("123", Number)
	tok.Rewrite("سەد و بیست و سێ", Word)

	if tok.Original != "123" {
		t.Errorf("Original = %q, want %q", tok.Original, "123")
	}
	if !tok.Converted {
		t.Error("Rewrite did not mark the token converted")
	}
	if tok.Type != Word {
		t.Errorf("Type = %v, want Word", tok.Type)
	}
}

func TestConsume(t *testing.T) {
	t.Parallel()

	tok := New("+", Symbol)
	if tok.Empty() {
		t.Fatal("fresh token reports empty")
	}
	tok.Consume()
	if !tok.Empty() {
		t.Error("consumed token not empty")
	}
	if tok.Original != "+" {
		t.Errorf("Consume touched Original: %q", tok.Original)
	}
}

func TestTags(t *testing.T) {
	t.Parallel()

	tok := New("km", Word)
	if tok.Tags.Has(TagIsUnit) {
		t.Error("fresh token carries a tag")
	}
	tok.Tags.Add(TagIsUnit)
	tok.Tags.Add(TagIsUnit)
	if !tok.Tags.Has(TagIsUnit) {
		t.Error("added tag not found")
	}
	if len(tok.Tags) != 1 {
		t.Errorf("duplicate Add grew the set: %d entries", len(tok.Tags))
	}
}

func TestTypeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ  Type
		want string
	}{
		{Word, "Word"},
		{Number, "Number"},
		{Superscript, "Superscript"},
		{Type(99), "Type(99)"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("Type(%d).String() = %q, want %q", int(tt.typ), got, tt.want)
		}
	}
}

func TestTokenString(t *testing.T) {
	t.Parallel()

	tok := New("12:30", Time)
	if got := tok.String(); got != `Time("12:30")` {
		t.Errorf("String() = %q", got)
	}
}
