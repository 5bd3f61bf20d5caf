package imaging

import (
	"image"
	"image/color"
	"math"
	"sort"
)

// All operations in this file are pure: they read the source raster and
// return a freshly allocated one, so several preprocessing recipes can run
// against the same decoded image independently.

// Clone returns a deep copy of src.
func Clone(src *image.Gray) *image.Gray {
	out := image.NewGray(src.Bounds())
	copy(out.Pix, src.Pix)
	return out
}

// at reads a pixel with border replication.
func at(img *image.Gray, x, y int) uint8 {
	b := img.Bounds()
	if x < b.Min.X {
		x = b.Min.X
	}
	if x >= b.Max.X {
		x = b.Max.X - 1
	}
	if y < b.Min.Y {
		y = b.Min.Y
	}
	if y >= b.Max.Y {
		y = b.Max.Y - 1
	}
	return img.GrayAt(x, y).Y
}

func colorGray(v float64) color.Gray {
	return color.Gray{Y: clampU8(v)}
}

func clampU8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// Mean returns the average intensity.
func Mean(img *image.Gray) float64 {
	var sum float64
	for _, p := range img.Pix {
		sum += float64(p)
	}
	if len(img.Pix) == 0 {
		return 0
	}
	return sum / float64(len(img.Pix))
}

// StdDev returns the intensity standard deviation.
func StdDev(img *image.Gray) float64 {
	return math.Sqrt(Variance(img))
}

// Variance returns the intensity variance.
func Variance(img *image.Gray) float64 {
	if len(img.Pix) == 0 {
		return 0
	}
	m := Mean(img)
	var sum float64
	for _, p := range img.Pix {
		d := float64(p) - m
		sum += d * d
	}
	return sum / float64(len(img.Pix))
}

// LaplacianVariance applies the 4-neighbour Laplacian and returns the
// variance of the response. Crisp edges produce a high value.
func LaplacianVariance(img *image.Gray) float64 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 3 || h < 3 {
		return 0
	}
	resp := make([]float64, 0, w*h)
	var sum float64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := -4*float64(at(img, x, y)) +
				float64(at(img, x-1, y)) + float64(at(img, x+1, y)) +
				float64(at(img, x, y-1)) + float64(at(img, x, y+1))
			resp = append(resp, v)
			sum += v
		}
	}
	m := sum / float64(len(resp))
	var acc float64
	for _, v := range resp {
		d := v - m
		acc += d * d
	}
	return acc / float64(len(resp))
}

// SobelEdgeFraction returns the fraction of pixels whose gradient magnitude
// exceeds threshold. Used as a cheap stand-in for edge-pixel density.
func SobelEdgeFraction(img *image.Gray, threshold float64) float64 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 3 || h < 3 {
		return 0
	}
	edges := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			gx := -float64(at(img, x-1, y-1)) + float64(at(img, x+1, y-1)) +
				-2*float64(at(img, x-1, y)) + 2*float64(at(img, x+1, y)) +
				-float64(at(img, x-1, y+1)) + float64(at(img, x+1, y+1))
			gy := -float64(at(img, x-1, y-1)) - 2*float64(at(img, x, y-1)) - float64(at(img, x+1, y-1)) +
				float64(at(img, x-1, y+1)) + 2*float64(at(img, x, y+1)) + float64(at(img, x+1, y+1))
			if math.Hypot(gx, gy) > threshold {
				edges++
			}
		}
	}
	return float64(edges) / float64(w*h)
}

// binomial blur kernels, radius -> weights
var blurKernels = map[int][]float64{
	1: {1, 2, 1},
	2: {1, 4, 6, 4, 1},
}

// GaussianBlur applies a separable binomial approximation of a Gaussian.
// Supported radii are 1 (3x3) and 2 (5x5); other radii fall back to 1.
func GaussianBlur(img *image.Gray, radius int) *image.Gray {
	k, ok := blurKernels[radius]
	if !ok {
		k = blurKernels[1]
		radius = 1
	}
	var norm float64
	for _, w := range k {
		norm += w
	}

	b := img.Bounds()
	tmp := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			var acc float64
			for i, w := range k {
				acc += w * float64(at(img, x+i-radius, y))
			}
			tmp.SetGray(x, y, colorGray(acc/norm))
		}
	}
	out := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			var acc float64
			for i, w := range k {
				acc += w * float64(at(tmp, x, y+i-radius))
			}
			out.SetGray(x, y, colorGray(acc/norm))
		}
	}
	return out
}

// MedianFilter applies a 3x3 median, the usual salt-and-pepper denoiser.
func MedianFilter(img *image.Gray) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(b)
	window := make([]int, 9)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					window[i] = int(at(img, x+dx, y+dy))
					i++
				}
			}
			sort.Ints(window)
			out.SetGray(x, y, colorGray(float64(window[4])))
		}
	}
	return out
}

// BilateralFilter smooths while keeping edges: spatially close pixels only
// contribute when their intensity is also close.
func BilateralFilter(img *image.Gray, radius int, sigmaColor, sigmaSpace float64) *image.Gray {
	if radius < 1 {
		radius = 1
	}
	b := img.Bounds()
	out := image.NewGray(b)

	// precompute spatial weights
	size := 2*radius + 1
	spatial := make([]float64, size*size)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d2 := float64(dx*dx + dy*dy)
			spatial[(dy+radius)*size+(dx+radius)] = math.Exp(-d2 / (2 * sigmaSpace * sigmaSpace))
		}
	}
	var colorW [256]float64
	for d := 0; d < 256; d++ {
		colorW[d] = math.Exp(-float64(d*d) / (2 * sigmaColor * sigmaColor))
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			center := float64(at(img, x, y))
			var num, den float64
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					v := float64(at(img, x+dx, y+dy))
					diff := int(math.Abs(v - center))
					w := spatial[(dy+radius)*size+(dx+radius)] * colorW[diff]
					num += w * v
					den += w
				}
			}
			out.SetGray(x, y, colorGray(num/den))
		}
	}
	return out
}

// CLAHE performs contrast-limited adaptive histogram equalization over a
// tile grid, bilinearly interpolating the per-tile mappings.
func CLAHE(img *image.Gray, clipLimit float64, tilesX, tilesY int) *image.Gray {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if tilesX < 1 {
		tilesX = 1
	}
	if tilesY < 1 {
		tilesY = 1
	}
	if tilesX > w {
		tilesX = w
	}
	if tilesY > h {
		tilesY = h
	}

	tileW := (w + tilesX - 1) / tilesX
	tileH := (h + tilesY - 1) / tilesY

	// per-tile clipped CDF lookup tables
	luts := make([][256]uint8, tilesX*tilesY)
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			x0, y0 := tx*tileW, ty*tileH
			x1, y1 := x0+tileW, y0+tileH
			if x1 > w {
				x1 = w
			}
			if y1 > h {
				y1 = h
			}
			var hist [256]int
			n := 0
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					hist[img.GrayAt(b.Min.X+x, b.Min.Y+y).Y]++
					n++
				}
			}
			if n == 0 {
				continue
			}
			// clip and redistribute
			limit := int(clipLimit * float64(n) / 256.0)
			if limit < 1 {
				limit = 1
			}
			excess := 0
			for i := 0; i < 256; i++ {
				if hist[i] > limit {
					excess += hist[i] - limit
					hist[i] = limit
				}
			}
			share := excess / 256
			for i := 0; i < 256; i++ {
				hist[i] += share
			}
			// build CDF
			cum := 0
			var lut [256]uint8
			for i := 0; i < 256; i++ {
				cum += hist[i]
				lut[i] = clampU8(float64(cum) * 255.0 / float64(n))
			}
			luts[ty*tilesX+tx] = lut
		}
	}

	out := image.NewGray(b)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := img.GrayAt(b.Min.X+x, b.Min.Y+y).Y
			out.SetGray(b.Min.X+x, b.Min.Y+y, colorGray(interpolateLUT(luts, tilesX, tilesY, tileW, tileH, x, y, v)))
		}
	}
	return out
}

func interpolateLUT(luts [][256]uint8, tilesX, tilesY, tileW, tileH, x, y int, v uint8) float64 {
	// position in tile-center space
	gx := (float64(x) - float64(tileW)/2) / float64(tileW)
	gy := (float64(y) - float64(tileH)/2) / float64(tileH)

	x0 := int(math.Floor(gx))
	y0 := int(math.Floor(gy))
	x1, y1 := x0+1, y0+1
	wx := gx - float64(x0)
	wy := gy - float64(y0)

	clampTile := func(tx, ty int) *[256]uint8 {
		if tx < 0 {
			tx = 0
		}
		if tx >= tilesX {
			tx = tilesX - 1
		}
		if ty < 0 {
			ty = 0
		}
		if ty >= tilesY {
			ty = tilesY - 1
		}
		return &luts[ty*tilesX+tx]
	}

	v00 := float64(clampTile(x0, y0)[v])
	v10 := float64(clampTile(x1, y0)[v])
	v01 := float64(clampTile(x0, y1)[v])
	v11 := float64(clampTile(x1, y1)[v])

	top := v00*(1-wx) + v10*wx
	bot := v01*(1-wx) + v11*wx
	return top*(1-wy) + bot*wy
}

// OtsuThreshold binarizes with the global Otsu threshold: pixels above the
// threshold become white, the rest black.
func OtsuThreshold(img *image.Gray) *image.Gray {
	var hist [256]int
	for _, p := range img.Pix {
		hist[p]++
	}
	total := len(img.Pix)

	var sumAll float64
	for i, c := range hist {
		sumAll += float64(i * c)
	}

	var sumB float64
	var wB int
	var maxVar float64
	threshold := 0
	for t := 0; t < 256; t++ {
		wB += hist[t]
		if wB == 0 {
			continue
		}
		wF := total - wB
		if wF == 0 {
			break
		}
		sumB += float64(t * hist[t])
		mB := sumB / float64(wB)
		mF := (sumAll - sumB) / float64(wF)
		between := float64(wB) * float64(wF) * (mB - mF) * (mB - mF)
		if between > maxVar {
			maxVar = between
			threshold = t
		}
	}

	return applyThreshold(img, uint8(threshold))
}

func applyThreshold(img *image.Gray, t uint8) *image.Gray {
	out := image.NewGray(img.Bounds())
	for i, p := range img.Pix {
		if p > t {
			out.Pix[i] = 255
		} else {
			out.Pix[i] = 0
		}
	}
	return out
}

// AdaptiveThresholdMean binarizes against the local block mean minus c:
// pixels brighter than their neighbourhood stay white.
func AdaptiveThresholdMean(img *image.Gray, block, c int) *image.Gray {
	if block%2 == 0 {
		block++
	}
	r := block / 2
	b := img.Bounds()
	out := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			var sum float64
			for dy := -r; dy <= r; dy++ {
				for dx := -r; dx <= r; dx++ {
					sum += float64(at(img, x+dx, y+dy))
				}
			}
			mean := sum / float64(block*block)
			if float64(at(img, x, y)) > mean-float64(c) {
				out.SetGray(x, y, colorGray(255))
			} else {
				out.SetGray(x, y, colorGray(0))
			}
		}
	}
	return out
}

// AdaptiveThresholdGaussian is like AdaptiveThresholdMean but weighs the
// neighbourhood with a Gaussian falloff.
func AdaptiveThresholdGaussian(img *image.Gray, block, c int) *image.Gray {
	if block%2 == 0 {
		block++
	}
	r := block / 2
	sigma := 0.3*(float64(block-1)*0.5-1) + 0.8
	weights := make([]float64, block*block)
	var norm float64
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			w := math.Exp(-float64(dx*dx+dy*dy) / (2 * sigma * sigma))
			weights[(dy+r)*block+(dx+r)] = w
			norm += w
		}
	}

	b := img.Bounds()
	out := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			var sum float64
			for dy := -r; dy <= r; dy++ {
				for dx := -r; dx <= r; dx++ {
					sum += weights[(dy+r)*block+(dx+r)] * float64(at(img, x+dx, y+dy))
				}
			}
			mean := sum / norm
			if float64(at(img, x, y)) > mean-float64(c) {
				out.SetGray(x, y, colorGray(255))
			} else {
				out.SetGray(x, y, colorGray(0))
			}
		}
	}
	return out
}

// Dilate grows bright regions with a kw x kh rectangular kernel.
func Dilate(img *image.Gray, kw, kh int) *image.Gray {
	return morph(img, kw, kh, true)
}

// Erode shrinks bright regions with a kw x kh rectangular kernel.
func Erode(img *image.Gray, kw, kh int) *image.Gray {
	return morph(img, kw, kh, false)
}

// MorphClose is dilation followed by erosion; fills small dark gaps inside
// glyphs without thickening strokes overall.
func MorphClose(img *image.Gray, kw, kh int) *image.Gray {
	return Erode(Dilate(img, kw, kh), kw, kh)
}

func morph(img *image.Gray, kw, kh int, dilate bool) *image.Gray {
	if kw < 1 {
		kw = 1
	}
	if kh < 1 {
		kh = 1
	}
	// anchor at kernel center, matching the usual convention
	ax, ay := kw/2, kh/2
	b := img.Bounds()
	out := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			var best uint8
			if !dilate {
				best = 255
			}
			for dy := 0; dy < kh; dy++ {
				for dx := 0; dx < kw; dx++ {
					v := at(img, x+dx-ax, y+dy-ay)
					if dilate && v > best {
						best = v
					}
					if !dilate && v < best {
						best = v
					}
				}
			}
			out.SetGray(x, y, colorGray(float64(best)))
		}
	}
	return out
}

// UnsharpMask sharpens by adding back the difference from a blurred copy:
// out = (1+amount)*img - amount*blur(img).
func UnsharpMask(img *image.Gray, radius int, amount float64) *image.Gray {
	blurred := GaussianBlur(img, radius)
	b := img.Bounds()
	out := image.NewGray(b)
	for i := range img.Pix {
		v := (1+amount)*float64(img.Pix[i]) - amount*float64(blurred.Pix[i])
		out.Pix[i] = clampU8(v)
	}
	return out
}
