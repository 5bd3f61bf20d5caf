package analysis

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func chatResponse(content string, tokens int) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
		"usage": map[string]any{"total_tokens": tokens},
	})
	return string(b)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "test-model",
		Timeout: 5 * time.Second,
	}, nil)
}

func TestAnalyzeSuccess(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization header = %q", got)
		}
		_, _ = w.Write([]byte(chatResponse(`{"title":"Receipt","summary":"A grocery receipt.","entities":[]}`, 42)))
	})

	res, err := c.Analyze(context.Background(), "some ocr text", "english")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if res.TokensUsed != 42 {
		t.Errorf("tokens = %d, want 42", res.TokensUsed)
	}
	if res.Model != "test-model" {
		t.Errorf("model = %q", res.Model)
	}
	if res.Text == "" {
		t.Error("empty analysis text")
	}
}

func TestAnalyzeEmptyInputSkipsNetwork(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request sent for empty input")
	})

	res, err := c.Analyze(context.Background(), "   ", "auto")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if res != NoTextResult() {
		t.Errorf("got %+v, want the no-text result", res)
	}
}

func TestAnalyzeRejectsOffSchemaReply(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatResponse(`{"title":"only a title"}`, 5)))
	})

	if _, err := c.Analyze(context.Background(), "text", "auto"); err == nil {
		t.Fatal("expected a schema validation error")
	}
}

func TestAnalyzeUpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	if _, err := c.Analyze(context.Background(), "text", "auto"); err == nil {
		t.Fatal("expected an error for a non-2xx status")
	}
}
