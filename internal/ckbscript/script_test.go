package ckbscript

import "testing"

func TestEndsInVowel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"بەیانی", true},
		{"ئێوارە", true},
		{"شەو", true},
		{"کاتژمێر", false},
		{"مەتر", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := EndsInVowel(tt.in); got != tt.want {
			t.Errorf("EndsInVowel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHasHarakat(t *testing.T) {
	t.Parallel()

	if !HasHarakat("کِتَاب") {
		t.Error("vocalized word reports no harakat")
	}
	if !HasHarakat("ٱلشمس") {
		t.Error("wasla alef not treated as vocalization")
	}
	if HasHarakat("سڵاو") {
		t.Error("plain Kurdish word reports harakat")
	}
}

func TestStripJoiners(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"PMـە", "PMە"},
		{"باشـــە", "باشە"},
		{"a‌b", "ab"},
		{"سڵاو", "سڵاو"},
	}
	for _, tt := range tests {
		if got := StripJoiners(tt.in); got != tt.want {
			t.Errorf("StripJoiners(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFoldDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"٧٢", "72"},
		{"۱۲۳", "123"},
		{"٣٫١٤", "3.14"},
		{"٧٢٬٢٥٦", "72256"},
		{"123", "123"},
		{"12:30", "12:30"},
	}
	for _, tt := range tests {
		if got := FoldDigits(tt.in); got != tt.want {
			t.Errorf("FoldDigits(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Script
	}{
		{"hello", ScriptLatin},
		{"سڵاو", ScriptArabic},
		{"Путин", ScriptOther},
		{"...", ScriptOther},
		{"vitamin2", ScriptLatin},
	}
	for _, tt := range tests {
		if got := Detect(tt.in); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
