package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"
)

// Client exposes operations to query the completion backend.
type Client interface {
	Complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error)
}

// HTTPClient implements Client against a llama.cpp style /completion API.
// The model, tokenizer and quantization behind that endpoint are opaque; this
// client owns only the request parameters and response decoding.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// request mirrors the JSON payload accepted by the completion endpoint.
type request struct {
	Prompt      string  `json:"prompt"`
	NPredict    int     `json:"n_predict"`
	Temperature float64 `json:"temperature"`
	Stream      bool    `json:"stream"`
}

// response mirrors the JSON payload returned by the completion endpoint.
type response struct {
	Content string `json:"content"`
}

// NewHTTPClient creates an HTTP completion client. The client carries no
// request timeout of its own; callers bound the call through ctx.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse generator url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("generator url must be absolute")
	}
	return &HTTPClient{
		baseURL:    parsed,
		logger:     logger,
		httpClient: &http.Client{},
	}, nil
}

// Complete posts the prompt and returns the raw generated continuation.
func (c *HTTPClient) Complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/completion")

	payload, err := json.Marshal(request{
		Prompt:      prompt,
		NPredict:    maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("completion request failed",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return "", fmt.Errorf("completion error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	var data response
	if err := json.Unmarshal(body, &data); err != nil {
		return "", err
	}

	c.logger.Info("completion finished", slog.Duration("latency", time.Since(start)))
	return data.Content, nil
}
