package constants

import "testing"

func TestResolveLanguage(t *testing.T) {
	tests := []struct {
		hint string
		want string
	}{
		{"", "deu+eng+spa+fra"},
		{"auto", "deu+eng+spa+fra"},
		{"multi_european", "deu+eng+spa+fra+ita+por+nld"},
		{"german", "deu"},
		{"english", "eng"},
		{"eng+fra", "eng+fra"}, // raw tesseract sets pass through
	}
	for _, tt := range tests {
		if got := ResolveLanguage(tt.hint); got != tt.want {
			t.Errorf("ResolveLanguage(%q) = %q, want %q", tt.hint, got, tt.want)
		}
	}
}

func TestIsConcreteLanguage(t *testing.T) {
	for hint, want := range map[string]bool{
		"german":         true,
		"english":        true,
		"auto":           false,
		"multi_european": false,
		"":               false,
		"klingon":        false,
	} {
		if got := IsConcreteLanguage(hint); got != want {
			t.Errorf("IsConcreteLanguage(%q) = %v, want %v", hint, got, want)
		}
	}
}

func TestSourceKinds(t *testing.T) {
	for _, k := range SourceKinds {
		if !IsValidSourceKind(string(k)) {
			t.Errorf("listed kind %q not valid", k)
		}
	}
	if IsValidSourceKind("hologram") {
		t.Error("unknown kind accepted")
	}
	if !IsTextSource(SourceClipboardText) {
		t.Error("clipboard_text should be a text source")
	}
	if IsTextSource(SourceClipboardImage) {
		t.Error("clipboard_image is not a text source")
	}
}
