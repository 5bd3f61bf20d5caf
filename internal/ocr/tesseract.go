package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// TesseractEngine is the default Engine, backed by the gosseract binding.
type TesseractEngine struct {
	tessdataDir string
}

// NewTesseractEngine constructs a tesseract-backed engine. tessdataDir may
// be empty to use the system default.
func NewTesseractEngine(tessdataDir string) *TesseractEngine {
	return &TesseractEngine{tessdataDir: tessdataDir}
}

// Recognize runs one tesseract invocation. The underlying call is blocking
// native code, so it runs on its own goroutine and the context deadline is
// honored from the caller's side; an abandoned call finishes in the
// background and its result is discarded.
func (e *TesseractEngine) Recognize(ctx context.Context, req Request) (Recognition, error) {
	type outcome struct {
		rec Recognition
		err error
	}
	ch := make(chan outcome, 1)

	go func() {
		rec, err := e.recognize(req)
		ch <- outcome{rec: rec, err: err}
	}()

	select {
	case <-ctx.Done():
		return Recognition{}, ctx.Err()
	case out := <-ch:
		return out.rec, out.err
	}
}

func (e *TesseractEngine) recognize(req Request) (Recognition, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, req.Image); err != nil {
		return Recognition{}, fmt.Errorf("encode image: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if e.tessdataDir != "" {
		if err := client.SetTessdataPrefix(e.tessdataDir); err != nil {
			return Recognition{}, fmt.Errorf("set tessdata prefix: %w", err)
		}
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return Recognition{}, fmt.Errorf("set image: %w", err)
	}
	if req.Languages != "" {
		if err := client.SetLanguage(strings.Split(req.Languages, "+")...); err != nil {
			return Recognition{}, fmt.Errorf("set languages: %w", err)
		}
	}
	if req.PageSegMode > 0 {
		if err := client.SetPageSegMode(gosseract.PageSegMode(req.PageSegMode)); err != nil {
			return Recognition{}, fmt.Errorf("set page seg mode: %w", err)
		}
	}
	if req.EngineMode > 0 && req.EngineMode != 3 {
		cfg, err := engineModeConfig(req.EngineMode)
		if err != nil {
			return Recognition{}, fmt.Errorf("engine mode config: %w", err)
		}
		defer os.Remove(cfg)
		if err := client.SetConfigFile(cfg); err != nil {
			return Recognition{}, fmt.Errorf("set engine mode: %w", err)
		}
	}

	text, err := client.Text()
	if err != nil {
		return Recognition{}, fmt.Errorf("recognize text: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		// Text succeeded; treat missing word data as zero-confidence
		// rather than a failed call.
		return Recognition{Text: strings.TrimSpace(text)}, nil
	}
	confs := make([]float64, 0, len(boxes))
	for _, b := range boxes {
		confs = append(confs, b.Confidence)
	}
	return Recognition{Text: strings.TrimSpace(text), WordConfidences: confs}, nil
}

// engineModeConfig writes a one-line tesseract config file selecting the
// OCR engine. tessedit_ocr_engine_mode is read only during Init, and
// gosseract applies SetVariable values after Init, so the mode must go
// through a config file. The caller removes the file when done.
func engineModeConfig(mode int) (string, error) {
	f, err := os.CreateTemp("", "textsnap-oem-*.cfg")
	if err != nil {
		return "", err
	}
	if _, err := fmt.Fprintf(f, "tessedit_ocr_engine_mode %d\n", mode); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
