package strategy

import "github.com/calebmayer/textsnap/internal/quality"

// Quality bands for strategy selection.
const (
	highQualityScore = 70
	lowQualityScore  = 40
	midBandWebScore  = 60
)

// Sub-signal gates for the middle band.
const (
	denseTextDensityGate = 60
	singleLineSharpGate  = 50
)

// MaxAttempts bounds per-job latency; the selector never schedules the
// whole catalog for one job.
const MaxAttempts = 4

// Select returns the ordered, non-empty set of strategies to attempt for an
// image with the given quality metrics. A caller-supplied hint is always
// attempted first when it names a catalog entry.
func Select(m quality.Metrics, hint ID) []ID {
	var ids []ID

	switch {
	case m.Overall >= highQualityScore:
		// Clean input: the precise recipes are worth their cost.
		ids = []ID{Document, Screenshot, Web}
	case m.Overall < lowQualityScore:
		// Noisy input: lead with the two most noise-tolerant recipes,
		// keep document as a fallback.
		ids = []ID{Screenshot, DenseText, Document}
	default:
		ids = []ID{Document, Screenshot}
		if m.TextDensity > denseTextDensityGate {
			ids = append(ids, DenseText)
		}
		if m.Overall < midBandWebScore {
			ids = append(ids, Web)
		}
		if m.Sharpness < singleLineSharpGate {
			ids = append(ids, SingleLine)
		}
	}

	if IsValid(hint) {
		ids = promote(ids, hint)
	}
	if len(ids) > MaxAttempts {
		ids = ids[:MaxAttempts]
	}
	return ids
}

// promote moves hint to the front, inserting it if absent.
func promote(ids []ID, hint ID) []ID {
	out := make([]ID, 0, len(ids)+1)
	out = append(out, hint)
	for _, id := range ids {
		if id != hint {
			out = append(out, id)
		}
	}
	return out
}
