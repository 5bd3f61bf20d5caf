// Package ocr wraps the external text-recognition engine and runs the
// selected preprocessing strategies against it.
package ocr

import (
	"context"
	"image"
)

// Request is one engine invocation: a preprocessed raster plus the engine
// configuration the strategy was tuned for.
type Request struct {
	Image       *image.Gray
	Languages   string // tesseract language set, e.g. "deu+eng"
	PageSegMode int
	EngineMode  int
}

// Recognition is the raw engine output before any scoring.
type Recognition struct {
	Text            string
	WordConfidences []float64 // per recognized word, 0..100
}

// Confidence returns the mean word confidence, or 0 when the engine
// reported no words.
func (r Recognition) Confidence() float64 {
	if len(r.WordConfidences) == 0 {
		return 0
	}
	var sum float64
	for _, c := range r.WordConfidences {
		sum += c
	}
	return sum / float64(len(r.WordConfidences))
}

// Engine is the recognition collaborator. Any implementation satisfying
// this contract is substitutable; tests use an in-memory fake.
type Engine interface {
	Recognize(ctx context.Context, req Request) (Recognition, error)
}
