package ocr

import (
	"os"
	"testing"
)

func TestEngineModeConfig(t *testing.T) {
	path, err := engineModeConfig(1)
	if err != nil {
		t.Fatalf("engineModeConfig: %v", err)
	}
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if got, want := string(data), "tessedit_ocr_engine_mode 1\n"; got != want {
		t.Errorf("config = %q, want %q", got, want)
	}
}
