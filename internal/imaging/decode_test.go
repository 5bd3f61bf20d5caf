package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/calebmayer/textsnap/internal/common"
)

func TestDecodeRejectsGarbage(t *testing.T) {
	for _, payload := range [][]byte{
		nil,
		{},
		[]byte("definitely not an image"),
		{0x89, 0x50, 0x4e}, // truncated png magic
	} {
		_, err := Decode(payload)
		if err == nil {
			t.Fatalf("expected an error for %q", payload)
		}
		if !errors.Is(err, common.ErrDecode) {
			t.Errorf("error %v is not ErrDecode", err)
		}
	}
}

func TestDecodePNG(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 8, 6))
	src.Pix[0] = 200
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("encode: %v", err)
	}

	img, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 6 {
		t.Errorf("bounds = %v", img.Bounds())
	}
	if img.Pix[0] != 200 {
		t.Errorf("pixel 0 = %d, want 200", img.Pix[0])
	}
}

func TestDecodeJPEGToGray(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			src.Set(x, y, color.RGBA{R: 180, G: 40, B: 220, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}

	img, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	// uniform RGB should land near its luminance value after conversion
	if m := Mean(img); m < 85 || m > 120 {
		t.Errorf("gray mean = %v, want near the source luminance", m)
	}
}

func TestDecodeFileMissing(t *testing.T) {
	if _, err := DecodeFile("/nonexistent/capture.png"); err == nil {
		t.Fatal("expected an error")
	}
}
