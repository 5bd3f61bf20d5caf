package textnorm

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace runs", "hello   world\n\nnext\tline", "hello world next line"},
		{"trims", "  padded  ", "padded"},
		{"pipe to I", "|mportant not|ce", "Important notIce"},
		{"curly quotes", "‘quoted’ and “double”", `'quoted' and "double"`},
		{"zero in word", "G0OGLE B00K", "GOOGLE BOOK"},
		{"five in word", "5YSTEM CLA55", "SYSTEM CLASS"},
		{"standalone numbers survive", "total 500 items, id 05", "total 500 items, id 05"},
		{"amount untouched", "price 50.00", "price 50.00"},
		{"mixed", "0rder  55A for 100", "Order SSA for 100"},
		{"artifact between spaces", "a \x07 b", "a b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"hello   world",
		"G0OGLE B00K5",
		"|mportant “text” with 5YMBOL5",
		"plain already-normalized text",
		"price 50.00 and id 0500",
		"a \x07 b",
		"bell\x07between  runs\x1b here",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestNormalizeStripsNonPrintable(t *testing.T) {
	in := "text\x00with\x07artifacts\x1b"
	got := Normalize(in)
	for _, r := range got {
		if r < 0x20 && r != ' ' {
			t.Fatalf("control rune %q survived: %q", r, got)
		}
	}
	if got != "textwithartifacts" {
		t.Errorf("got %q, want %q", got, "textwithartifacts")
	}
}

func TestNormalizeNeverTruncatesWords(t *testing.T) {
	in := "The quick brown fox jumps over the lazy dog"
	if got := Normalize(in); got != in {
		t.Errorf("clean text changed: %q", got)
	}
}
