package analysis

import "testing"

func TestNoTextResultMatchesSchema(t *testing.T) {
	res := NoTextResult()
	if err := ValidateJSONAgainstSchema(BuildAnalysisJSONSchema(), []byte(res.Text)); err != nil {
		t.Fatalf("no-text result does not satisfy the schema: %v", err)
	}
	if res.TokensUsed != 0 {
		t.Errorf("no-text result cost %d tokens", res.TokensUsed)
	}
}

func TestValidateJSONAgainstSchema(t *testing.T) {
	schema := BuildAnalysisJSONSchema()
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{"valid minimal", `{"title":"t","summary":"s"}`, false},
		{"valid with entities", `{"title":"t","summary":"s","entities":[{"type":"date","value":"2026-03-01"}]}`, false},
		{"missing summary", `{"title":"t"}`, true},
		{"empty summary", `{"title":"t","summary":""}`, true},
		{"extra property", `{"title":"t","summary":"s","score":1}`, true},
		{"entity without value", `{"title":"t","summary":"s","entities":[{"type":"date"}]}`, true},
		{"not json", `title: t`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSONAgainstSchema(schema, []byte(tt.data))
			if tt.wantErr && err == nil {
				t.Error("expected a validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
