package strategy

import (
	"image"
	"testing"
)

func testImage(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/4+y/4)%2 == 0 {
				img.Pix[y*img.Stride+x] = 230
			} else {
				img.Pix[y*img.Stride+x] = 40
			}
		}
	}
	return img
}

func TestCatalogComplete(t *testing.T) {
	if len(CatalogOrder) != len(catalog) {
		t.Fatalf("order lists %d ids, catalog has %d", len(CatalogOrder), len(catalog))
	}
	for _, id := range CatalogOrder {
		s, ok := Lookup(id)
		if !ok {
			t.Fatalf("missing catalog entry for %q", id)
		}
		if s.ID != id {
			t.Errorf("entry %q carries id %q", id, s.ID)
		}
		if s.Preprocess == nil {
			t.Errorf("entry %q has no preprocessing recipe", id)
		}
		if s.Description == "" {
			t.Errorf("entry %q has no description", id)
		}
	}
}

func TestPreprocessingKeepsDimensions(t *testing.T) {
	src := testImage(40, 32)
	for _, id := range CatalogOrder {
		s, _ := Lookup(id)
		out, err := s.Preprocess(src)
		if err != nil {
			t.Errorf("%s: preprocess failed: %v", id, err)
			continue
		}
		if out.Bounds() != src.Bounds() {
			t.Errorf("%s: bounds changed from %v to %v", id, src.Bounds(), out.Bounds())
		}
	}
}

func TestPreprocessingDeterministic(t *testing.T) {
	src := testImage(40, 32)
	for _, id := range CatalogOrder {
		s, _ := Lookup(id)
		a, err := s.Preprocess(src)
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		b, err := s.Preprocess(src)
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		for i := range a.Pix {
			if a.Pix[i] != b.Pix[i] {
				t.Fatalf("%s: pixel %d differs between runs", id, i)
			}
		}
	}
}

func TestPreprocessingDoesNotMutateInput(t *testing.T) {
	src := testImage(40, 32)
	orig := make([]uint8, len(src.Pix))
	copy(orig, src.Pix)
	for _, id := range CatalogOrder {
		s, _ := Lookup(id)
		if _, err := s.Preprocess(src); err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		for i := range src.Pix {
			if src.Pix[i] != orig[i] {
				t.Fatalf("%s: mutated source pixel %d", id, i)
			}
		}
	}
}

func TestPreprocessingDegenerateInput(t *testing.T) {
	tiny := image.NewGray(image.Rect(0, 0, 2, 2))
	for _, id := range CatalogOrder {
		s, _ := Lookup(id)
		if _, err := s.Preprocess(tiny); err == nil {
			t.Errorf("%s: expected an error for a 2x2 input", id)
		}
	}
}

func TestOrderIndex(t *testing.T) {
	for i, id := range CatalogOrder {
		if got := OrderIndex(id); got != i {
			t.Errorf("OrderIndex(%q) = %d, want %d", id, got, i)
		}
	}
	if got := OrderIndex(ID("bogus")); got != len(CatalogOrder) {
		t.Errorf("OrderIndex(bogus) = %d, want %d", got, len(CatalogOrder))
	}
}
