package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/contentflowhq/contentflow-backend/internal/config"
	"github.com/sirupsen/logrus"
)

// Max output sizes per operation kind
const (
	maxTokensHooks   = 1000
	maxTokensDefault = 2000
)

// UpstreamError is returned when the model API call itself fails.
// Detail carries the upstream diagnostic text for observability.
type UpstreamError struct {
	Detail string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream model API error: %s", e.Detail)
}

// Client performs single, non-retried calls to the Anthropic Messages API
type Client struct {
	cfg        *config.AnthropicConfig
	httpClient *http.Client
}

// NewClient creates a new Anthropic client
func NewClient(cfg *config.AnthropicConfig) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
	}
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequestBody struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicResponseBody struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// Complete sends one user prompt and returns the first text block of the reply.
// Non-2xx statuses and transport failures surface as *UpstreamError; no retries.
func (c *Client) Complete(ctx context.Context, apiKey, prompt string, maxTokens int) (string, error) {
	body := anthropicRequestBody{
		Model:     c.cfg.Model,
		MaxTokens: maxTokens,
		Messages: []anthropicMessage{
			{Role: "user", Content: prompt},
		},
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	url := c.cfg.BaseURL + "/v1/messages"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", apiKey)
	httpReq.Header.Set("anthropic-version", c.cfg.APIVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logrus.Errorf("Anthropic API request failed: %v", err)
		return "", &UpstreamError{Detail: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logrus.Errorf("Anthropic API returned status %d: %s", resp.StatusCode, string(respBody))
		return "", &UpstreamError{Detail: string(respBody)}
	}

	var parsed anthropicResponseBody
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse Anthropic response: %w", err)
	}

	for _, block := range parsed.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}

	return "", &UpstreamError{Detail: "response contained no text content block"}
}
