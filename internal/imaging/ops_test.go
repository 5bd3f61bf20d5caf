package imaging

import (
	"image"
	"testing"
)

func flat(w, h int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

func bimodal(w, h int) *image.Gray {
	// left half dark, right half bright
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < w/2 {
				img.Pix[y*img.Stride+x] = 40
			} else {
				img.Pix[y*img.Stride+x] = 210
			}
		}
	}
	return img
}

func TestMeanStdDev(t *testing.T) {
	img := bimodal(10, 10)
	if m := Mean(img); m != 125 {
		t.Errorf("mean = %v, want 125", m)
	}
	if s := StdDev(img); s != 85 {
		t.Errorf("stddev = %v, want 85", s)
	}
	if s := StdDev(flat(10, 10, 99)); s != 0 {
		t.Errorf("flat stddev = %v, want 0", s)
	}
}

func TestLaplacianVariance(t *testing.T) {
	if v := LaplacianVariance(flat(16, 16, 127)); v != 0 {
		t.Errorf("flat laplacian variance = %v, want 0", v)
	}
	if v := LaplacianVariance(bimodal(16, 16)); v <= 0 {
		t.Errorf("edge image laplacian variance = %v, want > 0", v)
	}
}

func TestGaussianBlurFlatInvariant(t *testing.T) {
	img := flat(16, 16, 77)
	for _, radius := range []int{1, 2} {
		out := GaussianBlur(img, radius)
		for i, p := range out.Pix {
			if p != 77 {
				t.Fatalf("radius %d: pixel %d = %d, want 77", radius, i, p)
			}
		}
	}
}

func TestGaussianBlurSoftensEdges(t *testing.T) {
	sharp := bimodal(16, 16)
	soft := GaussianBlur(sharp, 2)
	if v := LaplacianVariance(soft); v >= LaplacianVariance(sharp) {
		t.Errorf("blur did not reduce edge energy: %v", v)
	}
}

func TestOtsuSeparatesBimodal(t *testing.T) {
	out := OtsuThreshold(bimodal(20, 20))
	for i, p := range out.Pix {
		if p != 0 && p != 255 {
			t.Fatalf("pixel %d = %d, output must be binary", i, p)
		}
	}
	// the two halves must land on opposite sides
	if out.Pix[0] == out.Pix[19] {
		t.Errorf("threshold failed to separate the modes")
	}
}

func TestAdaptiveThresholdsBinary(t *testing.T) {
	src := bimodal(24, 24)
	for name, out := range map[string]*image.Gray{
		"mean":     AdaptiveThresholdMean(src, 11, 2),
		"gaussian": AdaptiveThresholdGaussian(src, 11, 2),
	} {
		for i, p := range out.Pix {
			if p != 0 && p != 255 {
				t.Fatalf("%s: pixel %d = %d, output must be binary", name, i, p)
			}
		}
	}
}

func TestMorphCloseFillsGaps(t *testing.T) {
	// a white field with a one-pixel black hole
	img := flat(10, 10, 255)
	img.Pix[5*img.Stride+5] = 0
	out := MorphClose(img, 2, 2)
	if out.Pix[5*out.Stride+5] != 255 {
		t.Errorf("close did not fill the hole")
	}
}

func TestCLAHEStretchesContrast(t *testing.T) {
	// a low-contrast ramp
	img := image.NewGray(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Pix[y*img.Stride+x] = uint8(110 + x/8)
		}
	}
	out := CLAHE(img, 2.0, 4, 4)
	if StdDev(out) <= StdDev(img) {
		t.Errorf("contrast not stretched: %v vs %v", StdDev(out), StdDev(img))
	}
}

func TestCloneIndependent(t *testing.T) {
	src := flat(4, 4, 10)
	dst := Clone(src)
	dst.Pix[0] = 200
	if src.Pix[0] != 10 {
		t.Errorf("clone aliases source pixels")
	}
}
