package constants

// SourceKind describes where a job's payload came from.
type SourceKind string

// Stable values (store these exact strings in queue payloads and DB rows).
const (
	SourceScreenshot     SourceKind = "screenshot"
	SourceClipboardImage SourceKind = "clipboard_image"
	SourceClipboardText  SourceKind = "clipboard_text"
	SourceBatchMember    SourceKind = "batch_member"
)

// SourceKinds holds every accepted source kind, for payload validation.
var SourceKinds = []SourceKind{
	SourceScreenshot,
	SourceClipboardImage,
	SourceClipboardText,
	SourceBatchMember,
}

// IsValidSourceKind reports whether s is one of the accepted source kinds.
func IsValidSourceKind(s string) bool {
	for _, k := range SourceKinds {
		if string(k) == s {
			return true
		}
	}
	return false
}

// IsTextSource reports whether the payload carries raw text and therefore
// bypasses the OCR stages entirely.
func IsTextSource(s SourceKind) bool {
	return s == SourceClipboardText
}
