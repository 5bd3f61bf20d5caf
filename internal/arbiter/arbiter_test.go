package arbiter

import (
	"testing"

	"github.com/calebmayer/textsnap/internal/ocr"
	"github.com/calebmayer/textsnap/internal/strategy"
)

func candidate(id strategy.ID, conf float64, text string, words int) ocr.Candidate {
	return ocr.Candidate{
		StrategyID: id,
		Text:       text,
		Confidence: conf,
		TextLength: len(text),
		WordCount:  words,
		Language:   "eng",
	}
}

func TestScoreConfidenceMonotonic(t *testing.T) {
	low := candidate(strategy.Document, 50, "hello world text", 3)
	high := candidate(strategy.Document, 90, "hello world text", 3)
	if Score(high) <= Score(low) {
		t.Fatalf("higher confidence did not score higher: %v vs %v", Score(high), Score(low))
	}
}

func TestScoreSaturation(t *testing.T) {
	long := make([]byte, 500)
	for i := range long {
		long[i] = 'a'
	}
	atCap := candidate(strategy.Document, 80, string(long[:100]), 10)
	beyond := candidate(strategy.Document, 80, string(long), 10)
	if Score(atCap) != Score(beyond) {
		t.Fatalf("length beyond saturation changed score: %v vs %v", Score(atCap), Score(beyond))
	}
	tenWords := candidate(strategy.Document, 80, "text", 10)
	fiftyWords := candidate(strategy.Document, 80, "text", 50)
	if Score(tenWords) != Score(fiftyWords) {
		t.Fatalf("word count beyond saturation changed score")
	}
}

func TestScoreLanguageBonus(t *testing.T) {
	concrete := candidate(strategy.Document, 80, "hallo welt", 2)
	mixed := concrete
	mixed.Language = "deu+eng+spa+fra"
	empty := concrete
	empty.Language = ""
	if Score(concrete) <= Score(mixed) {
		t.Errorf("concrete language should outscore a mixed set")
	}
	if Score(mixed) != Score(empty) {
		t.Errorf("empty language should score like a mixed set")
	}
}

func TestSelectBestEmpty(t *testing.T) {
	if _, ok := SelectBest(nil); ok {
		t.Fatal("expected ok=false for an empty candidate set")
	}
}

func TestSelectBestPrefersConfidence(t *testing.T) {
	cands := []ocr.Candidate{
		candidate(strategy.Screenshot, 40, "some recognized text here", 4),
		candidate(strategy.Document, 95, "some recognized text here", 4),
		candidate(strategy.Web, 60, "some recognized text here", 4),
	}
	winner, ok := SelectBest(cands)
	if !ok {
		t.Fatal("expected a winner")
	}
	if winner.StrategyID != strategy.Document {
		t.Fatalf("winner = %q, want %q", winner.StrategyID, strategy.Document)
	}
}

func TestSelectBestDeterministic(t *testing.T) {
	cands := []ocr.Candidate{
		candidate(strategy.Document, 72, "alpha beta gamma", 3),
		candidate(strategy.Screenshot, 74, "alpha beta", 2),
		candidate(strategy.DenseText, 71, "alpha beta gamma delta", 4),
	}
	first, _ := SelectBest(cands)
	for i := 0; i < 10; i++ {
		got, _ := SelectBest(cands)
		if got != first {
			t.Fatalf("run %d: winner changed from %+v to %+v", i, first, got)
		}
	}
}

func TestSelectBestTieBreakWordCount(t *testing.T) {
	// both word counts sit beyond the saturation point, so the scores are
	// identical and the raw count decides the tie
	a := candidate(strategy.Screenshot, 80, "one two three four", 11)
	b := candidate(strategy.Screenshot, 80, "one two three four", 14)
	winner, _ := SelectBest([]ocr.Candidate{a, b})
	if winner.WordCount != 14 {
		t.Fatalf("tie should go to more words, got %+v", winner)
	}
}

func TestSelectBestTieBreakCatalogOrder(t *testing.T) {
	// document carries a +0.3 score edge over dense via strategy bonus
	// ((10-9) * 0.15), inside the tie window; equal words fall through to
	// catalog order, which also favors document
	a := candidate(strategy.DenseText, 80, "one two three", 3)
	b := candidate(strategy.Document, 80, "one two three", 3)
	winner, _ := SelectBest([]ocr.Candidate{a, b})
	if winner.StrategyID != strategy.Document {
		t.Fatalf("tie should go to catalog order, got %q", winner.StrategyID)
	}
}

func TestSelectBestZeroConfidenceStillWins(t *testing.T) {
	// a set of all-failed candidates must still produce a winner so the
	// job can proceed with empty text instead of aborting
	cands := []ocr.Candidate{
		candidate(strategy.Document, 0, "", 0),
		candidate(strategy.Screenshot, 0, "", 0),
	}
	if _, ok := SelectBest(cands); !ok {
		t.Fatal("expected a winner even with zero-confidence candidates")
	}
}
