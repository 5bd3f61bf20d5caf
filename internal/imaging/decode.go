package imaging

import (
	"bytes"
	"fmt"
	"image"
	"os"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/calebmayer/textsnap/internal/common"
)

// Decode parses raw PNG/JPEG/BMP/WebP bytes into a grayscale raster.
// Malformed bytes come back wrapped in common.ErrDecode so callers can
// classify the failure without string matching.
func Decode(data []byte) (*image.Gray, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDecode, err)
	}
	b := img.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return nil, fmt.Errorf("%w: %s image has degenerate dimensions %dx%d",
			common.ErrDecode, format, b.Dx(), b.Dy())
	}
	return ToGray(img), nil
}

// DecodeFile reads and decodes the image at path.
func DecodeFile(path string) (*image.Gray, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Decode(data)
}

// ToGray converts any image to 8-bit grayscale using the standard luminance
// weights. Already-gray inputs are copied, never aliased.
func ToGray(img image.Image) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x-b.Min.X, y-b.Min.Y, img.At(x, y))
		}
	}
	return out
}
