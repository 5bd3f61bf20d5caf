package strategy

import (
	"testing"

	"github.com/calebmayer/textsnap/internal/quality"
)

func TestSelectNeverEmpty(t *testing.T) {
	for score := 0.0; score <= 100.0; score += 0.5 {
		m := quality.Metrics{Overall: score}
		ids := Select(m, "")
		if len(ids) == 0 {
			t.Fatalf("score %v: empty strategy set", score)
		}
		if len(ids) > MaxAttempts {
			t.Fatalf("score %v: %d strategies exceeds cap %d", score, len(ids), MaxAttempts)
		}
		for _, id := range ids {
			if !IsValid(id) {
				t.Fatalf("score %v: unknown strategy %q", score, id)
			}
		}
	}
}

func TestSelectHighQuality(t *testing.T) {
	ids := Select(quality.Metrics{Overall: 85}, "")
	want := []ID{Document, Screenshot, Web}
	if len(ids) != len(want) {
		t.Fatalf("got %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("got %v, want %v", ids, want)
		}
	}
}

func TestSelectLowQuality(t *testing.T) {
	ids := Select(quality.Metrics{Overall: 35}, "")
	want := []ID{Screenshot, DenseText, Document}
	if len(ids) != len(want) {
		t.Fatalf("got %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("got %v, want %v", ids, want)
		}
	}
}

func TestSelectMidBandGates(t *testing.T) {
	tests := []struct {
		name string
		m    quality.Metrics
		want []ID
	}{
		{
			name: "plain mid band",
			m:    quality.Metrics{Overall: 65, Sharpness: 80},
			want: []ID{Document, Screenshot},
		},
		{
			name: "dense text gate",
			m:    quality.Metrics{Overall: 65, Sharpness: 80, TextDensity: 75},
			want: []ID{Document, Screenshot, DenseText},
		},
		{
			name: "lower mid adds web",
			m:    quality.Metrics{Overall: 55, Sharpness: 80},
			want: []ID{Document, Screenshot, Web},
		},
		{
			name: "soft image adds single line",
			m:    quality.Metrics{Overall: 65, Sharpness: 30},
			want: []ID{Document, Screenshot, SingleLine},
		},
		{
			name: "all gates hit the cap",
			m:    quality.Metrics{Overall: 55, Sharpness: 30, TextDensity: 75},
			want: []ID{Document, Screenshot, DenseText, Web},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := Select(tt.m, "")
			if len(ids) != len(tt.want) {
				t.Fatalf("got %v, want %v", ids, tt.want)
			}
			for i := range tt.want {
				if ids[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", ids, tt.want)
				}
			}
		})
	}
}

func TestSelectHintFirst(t *testing.T) {
	for score := 0.0; score <= 100.0; score += 10 {
		ids := Select(quality.Metrics{Overall: score}, SingleLine)
		if ids[0] != SingleLine {
			t.Fatalf("score %v: hint not first, got %v", score, ids)
		}
	}
	// a hint already in the set must not be duplicated
	ids := Select(quality.Metrics{Overall: 85}, Screenshot)
	seen := 0
	for _, id := range ids {
		if id == Screenshot {
			seen++
		}
	}
	if seen != 1 {
		t.Fatalf("hint duplicated: %v", ids)
	}
	if ids[0] != Screenshot {
		t.Fatalf("hint not first: %v", ids)
	}
}

func TestSelectUnknownHintIgnored(t *testing.T) {
	base := Select(quality.Metrics{Overall: 85}, "")
	hinted := Select(quality.Metrics{Overall: 85}, ID("bogus"))
	if len(base) != len(hinted) {
		t.Fatalf("bogus hint changed the set: %v vs %v", base, hinted)
	}
	for i := range base {
		if base[i] != hinted[i] {
			t.Fatalf("bogus hint changed the set: %v vs %v", base, hinted)
		}
	}
}
