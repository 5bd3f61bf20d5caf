package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Pipeline error taxonomy. Stage-local failures are matched against these
// sentinels with errors.Is; none of them is allowed to kill a worker loop.
var (
	// ErrDecode means the payload bytes are not a valid raster image.
	// Fatal for that job, never retried.
	ErrDecode = errors.New("image decode failed")

	// ErrAnalysisUnavailable means the analysis collaborator errored or
	// timed out. Recovered locally with a placeholder analysis.
	ErrAnalysisUnavailable = errors.New("analysis unavailable")

	// ErrStorageWrite means the durable insert failed. Retried a bounded
	// number of times before the job is recorded as failed(storing).
	ErrStorageWrite = errors.New("storage write failed")

	// ErrBrokerUnavailable means the queue broker cannot be reached. The
	// worker retries the connection rather than exiting.
	ErrBrokerUnavailable = errors.New("broker unavailable")

	// ErrInvalidPayload means a dequeued message does not parse into a
	// job envelope. The message is logged and dropped.
	ErrInvalidPayload = errors.New("invalid queue payload")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
