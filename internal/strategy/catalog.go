// Package strategy holds the fixed preprocessing + engine-configuration
// catalog and the policy that picks which entries to attempt for a job.
package strategy

import (
	"fmt"
	"image"

	"github.com/calebmayer/textsnap/internal/imaging"
)

// ID names one catalog entry. The set is closed on purpose: a missing case
// in a switch over IDs should be a review finding, not a plugin hook.
type ID string

const (
	Document   ID = "document"
	Screenshot ID = "screenshot"
	Web        ID = "web"
	SingleLine ID = "single_line"
	DenseText  ID = "dense_text_enhanced"
)

// CatalogOrder is the declaration order used for tie-breaks.
var CatalogOrder = []ID{Document, Screenshot, Web, SingleLine, DenseText}

// Strategy pairs an image transform with the engine configuration it was
// tuned for. Preprocess never mutates its input and returns a new raster.
type Strategy struct {
	ID          ID
	Preprocess  func(*image.Gray) (*image.Gray, error)
	PageSegMode int // tesseract PSM
	EngineMode  int // tesseract OEM; 3 = default, 1 = legacy (small fonts)
	Description string
}

const minDimension = 3

func guard(img *image.Gray) error {
	b := img.Bounds()
	if b.Dx() < minDimension || b.Dy() < minDimension {
		return fmt.Errorf("image too small for preprocessing: %dx%d", b.Dx(), b.Dy())
	}
	return nil
}

var catalog = map[ID]Strategy{
	Document: {
		ID:          Document,
		PageSegMode: 6,
		EngineMode:  3,
		Description: "clean document text with uniform layout",
		Preprocess: func(img *image.Gray) (*image.Gray, error) {
			if err := guard(img); err != nil {
				return nil, err
			}
			denoised := imaging.MedianFilter(img)
			thresh := imaging.AdaptiveThresholdGaussian(denoised, 11, 2)
			return imaging.MorphClose(thresh, 2, 2), nil
		},
	},
	Screenshot: {
		ID:          Screenshot,
		PageSegMode: 11,
		EngineMode:  3,
		Description: "screenshots with sparse mixed text and graphics",
		Preprocess: func(img *image.Gray) (*image.Gray, error) {
			if err := guard(img); err != nil {
				return nil, err
			}
			enhanced := imaging.CLAHE(img, 3.0, 8, 8)
			denoised := imaging.MedianFilter(enhanced)
			return imaging.OtsuThreshold(denoised), nil
		},
	},
	Web: {
		ID:          Web,
		PageSegMode: 3,
		EngineMode:  3,
		Description: "web pages and complex layouts",
		Preprocess: func(img *image.Gray) (*image.Gray, error) {
			if err := guard(img); err != nil {
				return nil, err
			}
			filtered := imaging.BilateralFilter(img, 4, 75, 75)
			enhanced := imaging.CLAHE(filtered, 2.0, 4, 4)
			return imaging.AdaptiveThresholdMean(enhanced, 15, 10), nil
		},
	},
	SingleLine: {
		ID:          SingleLine,
		PageSegMode: 8,
		EngineMode:  3,
		Description: "single lines or isolated words",
		Preprocess: func(img *image.Gray) (*image.Gray, error) {
			if err := guard(img); err != nil {
				return nil, err
			}
			blurred := imaging.GaussianBlur(img, 1)
			thresh := imaging.OtsuThreshold(blurred)
			return imaging.Dilate(thresh, 1, 2), nil
		},
	},
	DenseText: {
		ID:          DenseText,
		PageSegMode: 6,
		EngineMode:  1,
		Description: "dense small-font text, legacy engine",
		Preprocess: func(img *image.Gray) (*image.Gray, error) {
			if err := guard(img); err != nil {
				return nil, err
			}
			denoised := imaging.MedianFilter(imaging.MedianFilter(img))
			sharpened := imaging.UnsharpMask(denoised, 2, 0.5)
			thresh := imaging.AdaptiveThresholdGaussian(sharpened, 13, 3)
			return imaging.MorphClose(thresh, 2, 1), nil
		},
	},
}

// Lookup returns the catalog entry for id.
func Lookup(id ID) (Strategy, bool) {
	s, ok := catalog[id]
	return s, ok
}

// IsValid reports whether id names a catalog entry.
func IsValid(id ID) bool {
	_, ok := catalog[id]
	return ok
}

// OrderIndex returns the position of id in catalog declaration order, or
// len(CatalogOrder) for unknown ids so they sort last.
func OrderIndex(id ID) int {
	for i, c := range CatalogOrder {
		if c == id {
			return i
		}
	}
	return len(CatalogOrder)
}
