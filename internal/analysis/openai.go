package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/calebmayer/textsnap/constants"
	"github.com/calebmayer/textsnap/internal/common"
)

// Config for the OpenAI-compatible analysis client.
type Config struct {
	APIKey      string        // if empty, falls back to env OPENAI_API_KEY
	BaseURL     string        // default https://api.openai.com/v1
	Model       string        // e.g., "gpt-4o-mini"
	Temperature float32       // 0..2
	Timeout     time.Duration // http client timeout
}

// Client calls an OpenAI-style chat/completions endpoint and validates the
// structured analysis it returns.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Analyze implements Analyzer. Empty input short-circuits to NoTextResult
// without touching the network.
func (c *Client) Analyze(ctx context.Context, text, language string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return NoTextResult(), nil
	}

	rid := uuid.New().String()
	start := time.Now()
	c.logger.Info("analysis.start",
		"req_id", rid,
		"job_id", common.JobIDFromContext(ctx),
		"model", c.cfg.Model,
		"text_len", len(text),
		"language", language,
	)

	schema := BuildAnalysisJSONSchema()
	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": systemPrompt(language)},
			{"role": "user", "content": userPrompt(text)},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.logger.Error("analysis.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return Result{}, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			TotalTokens int `json:"total_tokens"`
		} `json:"usage"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return Result{}, fmt.Errorf("decode analysis response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return Result{}, fmt.Errorf("no choices in analysis response")
	}
	content := strings.TrimSpace(cc.Choices[0].Message.Content)

	if err := ValidateJSONAgainstSchema(schema, []byte(content)); err != nil {
		c.logger.Error("analysis.schema_validation_failed",
			"req_id", rid, "error", err, "content_len", len(content),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return Result{}, fmt.Errorf("schema validation failed: %w", err)
	}

	c.logger.Info("analysis.ok",
		"req_id", rid,
		"tokens", cc.Usage.TotalTokens,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{
		Text:       content,
		Model:      c.cfg.Model,
		TokensUsed: cc.Usage.TotalTokens,
	}, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("analysis http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			c.logger.Warn("analysis response body close error", "error", cerr)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("read analysis response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("analysis status %d: %s", resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}

func systemPrompt(language string) string {
	parts := []string{
		"You are an intelligent assistant that extracts structured data from OCR text.",
		"Return ONLY JSON that matches the JSON Schema provided.",
		"Fill 'title' with a short label, 'summary' with a few sentences,",
		"and 'entities' with notable dates, names, amounts and locations.",
	}
	if constants.IsConcreteLanguage(language) {
		parts = append(parts, "The text is primarily in "+language+".")
	}
	return strings.Join(parts, " ")
}

func userPrompt(text string) string {
	var b strings.Builder
	b.WriteString("Extract key information from the following OCR text.\n\nText:\n")
	// cap what we send; screenshots occasionally OCR into megabytes of noise
	if len(text) > 6000 {
		b.WriteString(text[:6000])
	} else {
		b.WriteString(text)
	}
	return b.String()
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
