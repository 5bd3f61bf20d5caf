package constants

// Stage is the canonical pipeline stage for a job in flight.
type Stage string

// Stable values (these exact strings appear in logs, failure records and
// stage_durations keys).
const (
	StageQueued      Stage = "queued"
	StageAssessing   Stage = "assessing"   // decode + quality metrics
	StageExtracting  Stage = "extracting"  // preprocessing + OCR attempts
	StageArbitrating Stage = "arbitrating" // candidate scoring
	StageAnalyzing   Stage = "analyzing"   // external analysis call
	StageStoring     Stage = "storing"     // durable write by the storage sink
	StageDone        Stage = "done"
)
