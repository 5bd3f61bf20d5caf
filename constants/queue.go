package constants

// Broker queue names. These match the lists the capture clients push onto,
// so renaming any of them is a wire-format change.
const (
	OCRQueue          = "ocr_queue"
	StorageQueue      = "storage_queue"
	TextAnalysisQueue = "text_analysis_queue"
)

// ProcessingSuffix is appended to a queue name to form its processing list
// when the broker runs in acknowledged mode.
const ProcessingSuffix = ":processing"
