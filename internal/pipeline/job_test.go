package pipeline

import (
	"errors"
	"testing"
	"time"

	"github.com/calebmayer/textsnap/constants"
	"github.com/calebmayer/textsnap/internal/common"
)

func TestParseJobRoundTrip(t *testing.T) {
	folder := 7
	in := Job{
		JobID:        "job-1",
		SourceKind:   constants.SourceScreenshot,
		PayloadRef:   "/var/captures/a.png",
		OwnerID:      12,
		FolderID:     &folder,
		LanguageHint: "eng",
		CreatedAt:    time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		AttemptCount: 1,
	}
	payload, err := in.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := ParseJob(payload)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if out.JobID != in.JobID || out.SourceKind != in.SourceKind || out.PayloadRef != in.PayloadRef {
		t.Errorf("round trip lost payload fields: %+v", out)
	}
	if out.FolderID == nil || *out.FolderID != folder {
		t.Errorf("round trip lost folder_id: %+v", out.FolderID)
	}
}

func TestParseJobAcceptsCatalogContentHint(t *testing.T) {
	payload := `{"job_id":"j","source_kind":"screenshot","payload_ref":"/x.png","content_hint":"dense_text_enhanced"}`
	job, err := ParseJob(payload)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if job.ContentHint != "dense_text_enhanced" {
		t.Errorf("content hint = %q", job.ContentHint)
	}
}

func TestParseJobDefaultsLanguage(t *testing.T) {
	payload := `{"job_id":"j","source_kind":"screenshot","payload_ref":"/x.png"}`
	job, err := ParseJob(payload)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if job.LanguageHint != constants.LanguageHintAuto {
		t.Errorf("language hint = %q, want %q", job.LanguageHint, constants.LanguageHintAuto)
	}
}

func TestParseJobRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "not json at all"},
		{"missing job_id", `{"source_kind":"screenshot","payload_ref":"/x.png"}`},
		{"missing payload_ref", `{"job_id":"j","source_kind":"screenshot"}`},
		{"unknown source_kind", `{"job_id":"j","source_kind":"hologram","payload_ref":"/x.png"}`},
		{"unknown content_hint", `{"job_id":"j","source_kind":"screenshot","payload_ref":"/x.png","content_hint":"poster"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJob(tt.payload)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, common.ErrInvalidPayload) {
				t.Errorf("error %v is not ErrInvalidPayload", err)
			}
		})
	}
}

func TestParseResult(t *testing.T) {
	in := ProcessingResult{
		JobID:        "job-9",
		SourceKind:   constants.SourceScreenshot,
		FinalText:    "hello",
		Confidence:   88.5,
		StrategyUsed: "document",
		StageDurations: map[string]int64{
			"assessing": 3,
		},
	}
	payload, err := in.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := ParseResult(payload)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if out.JobID != in.JobID || out.FinalText != in.FinalText || out.Confidence != in.Confidence {
		t.Errorf("round trip lost fields: %+v", out)
	}

	if _, err := ParseResult(`{"final_text":"orphan"}`); !errors.Is(err, common.ErrInvalidPayload) {
		t.Errorf("result without job_id should be invalid, got %v", err)
	}
}
