// Package arbiter scores OCR candidates and picks the single winner.
// Everything here is a pure function: the same candidate set always
// produces the same winner.
package arbiter

import (
	"strings"

	"github.com/calebmayer/textsnap/internal/ocr"
	"github.com/calebmayer/textsnap/internal/strategy"
)

// Component weights of the composite score.
const (
	weightConfidence = 0.40
	weightTextLen    = 0.20
	weightWordCount  = 0.15
	weightStrategy   = 0.15
	weightLanguage   = 0.10
)

// Saturation points: beyond these, more text stops adding score.
const (
	textLenSaturation   = 100
	wordCountSaturation = 10
)

// tieWindow is the score distance within which two candidates are
// considered tied and the secondary criteria kick in.
const tieWindow = 0.5

// strategyBonus favors longer-form recipes: a strategy that reads whole
// blocks is less likely to have gotten lucky on a small fragment.
var strategyBonus = map[strategy.ID]float64{
	strategy.Document:   10,
	strategy.DenseText:  9,
	strategy.Screenshot: 8,
	strategy.Web:        6,
	strategy.SingleLine: 5,
}

// Language bonuses: a single concrete language is trusted over the
// auto/mixed recognition sets, which tend to be noisier.
const (
	concreteLanguageBonus = 8
	mixedLanguageBonus    = 4
)

// Score computes the composite score for one candidate.
func Score(c ocr.Candidate) float64 {
	lenScore := float64(c.TextLength) / textLenSaturation
	if lenScore > 1 {
		lenScore = 1
	}
	wordScore := float64(c.WordCount) / wordCountSaturation
	if wordScore > 1 {
		wordScore = 1
	}

	return weightConfidence*c.Confidence +
		weightTextLen*lenScore*100 +
		weightWordCount*wordScore*100 +
		weightStrategy*strategyBonus[c.StrategyID] +
		weightLanguage*languageBonus(c.Language)
}

func languageBonus(lang string) float64 {
	if lang == "" || strings.Contains(lang, "+") {
		return mixedLanguageBonus
	}
	return concreteLanguageBonus
}

// SelectBest returns the winning candidate. The second return is false
// only for an empty candidate set. Ties within tieWindow of the top score
// go to the candidate with more recognized words, then to the one earlier
// in catalog order.
func SelectBest(cands []ocr.Candidate) (ocr.Candidate, bool) {
	if len(cands) == 0 {
		return ocr.Candidate{}, false
	}

	scores := make([]float64, len(cands))
	best := 0
	for i, c := range cands {
		scores[i] = Score(c)
		if scores[i] > scores[best] {
			best = i
		}
	}

	winner := best
	for i := range cands {
		if i == winner {
			continue
		}
		if scores[best]-scores[i] > tieWindow {
			continue
		}
		if better(cands[i], scores[i], cands[winner], scores[winner]) {
			winner = i
		}
	}
	return cands[winner], true
}

// better decides the tie between two candidates already inside the window.
func better(a ocr.Candidate, sa float64, b ocr.Candidate, sb float64) bool {
	if a.WordCount != b.WordCount {
		return a.WordCount > b.WordCount
	}
	if oa, ob := strategy.OrderIndex(a.StrategyID), strategy.OrderIndex(b.StrategyID); oa != ob {
		return oa < ob
	}
	return sa > sb
}
