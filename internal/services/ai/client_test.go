package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/contentflowhq/contentflow-backend/internal/config"
)

func testConfig(baseURL string) *config.AnthropicConfig {
	return &config.AnthropicConfig{
		BaseURL:    baseURL,
		Model:      "claude-3-5-sonnet-20241022",
		APIVersion: "2023-06-01",
	}
}

func TestClientCompleteRequestShape(t *testing.T) {
	var gotReq *http.Request
	var gotBody anthropicRequestBody

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(context.Background())
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[{"type":"text","text":"hello back"}]}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))

	reply, err := client.Complete(context.Background(), "sk-test", "say hello", maxTokensHooks)
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if reply != "hello back" {
		t.Errorf("reply = %q, want %q", reply, "hello back")
	}

	if gotReq.URL.Path != "/v1/messages" {
		t.Errorf("path = %q, want /v1/messages", gotReq.URL.Path)
	}
	if got := gotReq.Header.Get("x-api-key"); got != "sk-test" {
		t.Errorf("x-api-key = %q", got)
	}
	if got := gotReq.Header.Get("anthropic-version"); got != "2023-06-01" {
		t.Errorf("anthropic-version = %q", got)
	}
	if got := gotReq.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q", got)
	}

	if gotBody.Model != "claude-3-5-sonnet-20241022" {
		t.Errorf("model = %q", gotBody.Model)
	}
	if gotBody.MaxTokens != maxTokensHooks {
		t.Errorf("max_tokens = %d, want %d", gotBody.MaxTokens, maxTokensHooks)
	}
	if len(gotBody.Messages) != 1 || gotBody.Messages[0].Role != "user" || gotBody.Messages[0].Content != "say hello" {
		t.Errorf("messages = %+v", gotBody.Messages)
	}
}

func TestClientCompleteUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"type":"error","error":{"type":"rate_limit_error"}}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))

	_, err := client.Complete(context.Background(), "sk-test", "p", maxTokensDefault)

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("error = %v, want *UpstreamError", err)
	}
	if upstream.Detail != `{"type":"error","error":{"type":"rate_limit_error"}}` {
		t.Errorf("Detail = %q", upstream.Detail)
	}
}

func TestClientCompleteSkipsNonTextBlocks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":[{"type":"thinking","text":"hmm"},{"type":"text","text":"answer"}]}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))

	reply, err := client.Complete(context.Background(), "sk-test", "p", maxTokensDefault)
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if reply != "answer" {
		t.Errorf("reply = %q, want %q", reply, "answer")
	}
}

func TestClientCompleteNoTextBlock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":[]}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))

	_, err := client.Complete(context.Background(), "sk-test", "p", maxTokensDefault)

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("error = %v, want *UpstreamError", err)
	}
}
