package common

import "context"

type contextKey string

const contextKeyJobID contextKey = "job_id"

// WithJobID adds a job ID to the context so collaborators deep in the
// pipeline can tag their logs without threading the id through every call.
func WithJobID(ctx context.Context, jobID string) context.Context {
	return context.WithValue(ctx, contextKeyJobID, jobID)
}

// JobIDFromContext extracts the job ID from context
func JobIDFromContext(ctx context.Context) string {
	if jobID, ok := ctx.Value(contextKeyJobID).(string); ok {
		return jobID
	}
	return ""
}
