package quality

import (
	"image"
	"math/rand"
	"testing"
)

func flatImage(w, h int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

func noisyImage(w, h int, mean float64, sigma float64, seed int64) *image.Gray {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		v := mean + rng.NormFloat64()*sigma
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		img.Pix[i] = uint8(v)
	}
	return img
}

func checkerboard(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 1 {
				img.Pix[y*img.Stride+x] = 255
			}
		}
	}
	return img
}

func TestAssessDeterministic(t *testing.T) {
	img := noisyImage(100, 100, 127, 10, 42)
	first := Assess(img)
	for i := 0; i < 5; i++ {
		if got := Assess(img); got != first {
			t.Fatalf("run %d: metrics changed: %+v vs %+v", i, got, first)
		}
	}
}

func TestAssessBounds(t *testing.T) {
	images := map[string]*image.Gray{
		"flat_black": flatImage(64, 64, 0),
		"flat_white": flatImage(64, 64, 255),
		"flat_gray":  flatImage(64, 64, 127),
		"noisy":      noisyImage(100, 100, 127, 10, 1),
		"checker":    checkerboard(64, 64),
	}
	for name, img := range images {
		m := Assess(img)
		for field, v := range map[string]float64{
			"sharpness":    m.Sharpness,
			"contrast":     m.Contrast,
			"brightness":   m.Brightness,
			"noise_level":  m.NoiseLevel,
			"text_density": m.TextDensity,
			"overall":      m.Overall,
		} {
			if v < 0 || v > 100 {
				t.Errorf("%s: %s = %v out of [0,100]", name, field, v)
			}
		}
	}
}

func TestAssessFlatImage(t *testing.T) {
	m := Assess(flatImage(64, 64, 127))
	if m.Sharpness != 0 {
		t.Errorf("flat image sharpness = %v, want 0", m.Sharpness)
	}
	if m.Contrast != 0 {
		t.Errorf("flat image contrast = %v, want 0", m.Contrast)
	}
	if m.Brightness != 100 {
		t.Errorf("mid-gray brightness = %v, want 100", m.Brightness)
	}
	if m.NoiseLevel != 100 {
		t.Errorf("flat image noise score = %v, want 100", m.NoiseLevel)
	}
	if m.TextDensity != 0 {
		t.Errorf("flat image text density = %v, want 0", m.TextDensity)
	}
}

func TestAssessBrightnessPenalty(t *testing.T) {
	dark := Assess(flatImage(64, 64, 5))
	mid := Assess(flatImage(64, 64, 127))
	bright := Assess(flatImage(64, 64, 250))
	if dark.Brightness >= mid.Brightness {
		t.Errorf("dark brightness %v not below mid %v", dark.Brightness, mid.Brightness)
	}
	if bright.Brightness >= mid.Brightness {
		t.Errorf("bright brightness %v not below mid %v", bright.Brightness, mid.Brightness)
	}
}

func TestAssessNoisyMidGrayScoresLow(t *testing.T) {
	// A flat mid-gray frame buried in sensor noise has no structure worth
	// OCR time; the composite should land well below the high-quality
	// band.
	m := Assess(noisyImage(100, 100, 127, 10, 42))
	if m.Overall < 20 || m.Overall > 50 {
		t.Errorf("noisy image overall = %v, want within [20,50]", m.Overall)
	}
	if m.Brightness < 90 {
		t.Errorf("mid-gray brightness = %v, want >= 90", m.Brightness)
	}
	if m.NoiseLevel > 90 {
		t.Errorf("noisy image noise score = %v, want penalized below 90", m.NoiseLevel)
	}
}
