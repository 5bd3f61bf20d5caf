// Package analysis wraps the external text-analysis collaborator. The
// pipeline treats it as a black box: text in, analysis text plus a token
// cost out. It is allowed to be slow and to fail; callers degrade to a
// placeholder rather than block a job on it.
package analysis

import "context"

// Result is one analysis outcome.
type Result struct {
	Text       string // structured analysis, JSON-encoded
	Model      string
	TokensUsed int
}

// Analyzer is the collaborator contract. Tests substitute a fake.
type Analyzer interface {
	Analyze(ctx context.Context, text, language string) (Result, error)
}

// NoTextResult is returned when there is nothing to analyze; it costs no
// tokens and never reaches the network.
func NoTextResult() Result {
	return Result{
		Text:       `{"title":"","summary":"No readable text was found in this capture.","entities":[]}`,
		Model:      "none",
		TokensUsed: 0,
	}
}
