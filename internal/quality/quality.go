// Package quality scores how OCR-friendly a raster is before any engine
// time is spent on it. Everything here is a pure function of the pixels:
// the same image always produces the same metrics.
package quality

import (
	"image"
	"math"

	"github.com/calebmayer/textsnap/internal/imaging"
)

// Metrics holds the per-signal scores, each rescaled to [0,100], plus the
// weighted composite. Derived data only; never persisted on its own.
type Metrics struct {
	Sharpness   float64 `json:"sharpness"`
	Contrast    float64 `json:"contrast"`
	Brightness  float64 `json:"brightness"`
	NoiseLevel  float64 `json:"noise_level"`
	TextDensity float64 `json:"text_density"`
	Overall     float64 `json:"overall_score"`
}

// Composite weights, tuned on screenshot corpora. Sharpness and contrast
// dominate: blurry or washed-out captures hurt recognition far more than a
// dark one does.
const (
	wSharpness   = 0.25
	wContrast    = 0.25
	wBrightness  = 0.15
	wNoise       = 0.15
	wTextDensity = 0.20
)

// Rescaling constants for the raw signals.
const (
	sharpnessScale  = 2000.0 // Laplacian variance of the blurred image at full score
	contrastScale   = 50.0   // intensity stddev at full score
	noiseScale      = 4.0    // residual stddev to penalty points
	densityScale    = 500.0  // edge fraction to score
	sobelEdgeThresh = 128.0  // gradient magnitude counted as an edge pixel
)

// Assess computes quality metrics for a decoded grayscale image. Safe to
// call concurrently on independent images.
func Assess(img *image.Gray) Metrics {
	// Sharpness on a lightly blurred copy, so sensor noise does not read
	// as crisp edges. Structural edges survive the blur; noise does not.
	smoothed := imaging.GaussianBlur(img, 1)
	sharpness := rescale(imaging.LaplacianVariance(smoothed) / sharpnessScale)

	contrast := rescale(imaging.StdDev(img) / contrastScale)

	// Mid-gray is ideal; both ends of the range cost points.
	mean := imaging.Mean(img)
	brightness := 100 - math.Abs(mean-127)/127*100
	if brightness < 0 {
		brightness = 0
	}

	// High-frequency energy: what a heavy blur removes is mostly noise.
	noise := 100 - residualStdDev(img)*noiseScale
	if noise < 0 {
		noise = 0
	}

	density := rescale(imaging.SobelEdgeFraction(img, sobelEdgeThresh) * densityScale / 100)

	overall := wSharpness*sharpness +
		wContrast*contrast +
		wBrightness*brightness +
		wNoise*noise +
		wTextDensity*density

	return Metrics{
		Sharpness:   sharpness,
		Contrast:    contrast,
		Brightness:  brightness,
		NoiseLevel:  noise,
		TextDensity: density,
		Overall:     overall,
	}
}

// residualStdDev measures the stddev of (image - blurred image).
func residualStdDev(img *image.Gray) float64 {
	blurred := imaging.GaussianBlur(img, 2)
	n := len(img.Pix)
	if n == 0 {
		return 0
	}
	var sum, sumSq float64
	for i := range img.Pix {
		d := float64(img.Pix[i]) - float64(blurred.Pix[i])
		sum += d
		sumSq += d * d
	}
	mean := sum / float64(n)
	return math.Sqrt(sumSq/float64(n) - mean*mean)
}

// rescale clamps a 0..1 ratio and maps it onto 0..100.
func rescale(ratio float64) float64 {
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}
	return ratio * 100
}
