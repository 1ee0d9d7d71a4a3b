package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/contentflowhq/contentflow-backend/internal/config"
	"github.com/contentflowhq/contentflow-backend/internal/services/ai"

	"github.com/gin-gonic/gin"
)

func newGenerateRouter(t *testing.T, upstream http.HandlerFunc) (*gin.Engine, *int64) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var calls int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		upstream(w, r)
	}))
	t.Cleanup(server.Close)

	cfg := &config.AnthropicConfig{
		BaseURL:    server.URL,
		Model:      "claude-3-5-sonnet-20241022",
		APIVersion: "2023-06-01",
	}
	handler := NewGenerateHandler(ai.NewService(cfg, nil))

	router := gin.New()
	v1 := router.Group("/api/v1/ai")
	v1.POST("/generate-ideas", handler.GenerateIdeas)
	v1.POST("/generate-hooks", handler.GenerateHooks)
	v1.POST("/generate-outline", handler.GenerateOutline)
	v1.POST("/text-operations", handler.TextOperation)
	v1.POST("/analyze-content", handler.AnalyzeContent)
	return router, &calls
}

func replyWith(text string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"content": []map[string]string{{"type": "text", "text": text}},
		})
	}
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestGenerateMissingFields(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	router, calls := newGenerateRouter(t, replyWith("{}"))

	tests := []struct {
		name    string
		path    string
		body    map[string]interface{}
		wantErr string
	}{
		{
			name:    "ideas without description",
			path:    "/api/v1/ai/generate-ideas",
			body:    map[string]interface{}{"contentTypes": []string{"blog"}},
			wantErr: "Missing required fields: businessDescription and contentTypes",
		},
		{
			name:    "ideas without content types",
			path:    "/api/v1/ai/generate-ideas",
			body:    map[string]interface{}{"businessDescription": "a bakery"},
			wantErr: "Missing required fields: businessDescription and contentTypes",
		},
		{
			name:    "hooks without topic",
			path:    "/api/v1/ai/generate-hooks",
			body:    map[string]interface{}{"contentType": "blog"},
			wantErr: "Missing required fields: topic and contentType",
		},
		{
			name:    "outline without hook",
			path:    "/api/v1/ai/generate-outline",
			body:    map[string]interface{}{"topic": "sourdough", "contentType": "blog"},
			wantErr: "Missing required fields: topic, hook, and contentType",
		},
		{
			name:    "text operation without operation",
			path:    "/api/v1/ai/text-operations",
			body:    map[string]interface{}{"text": "hello"},
			wantErr: "Missing required fields: text and operation",
		},
		{
			name:    "analyze without text",
			path:    "/api/v1/ai/analyze-content",
			body:    map[string]interface{}{"title": "My Post"},
			wantErr: "Missing required field: text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, router, tt.path, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
			body := decodeBody(t, rec)
			if body["error"] != tt.wantErr {
				t.Errorf("error = %q, want %q", body["error"], tt.wantErr)
			}
		})
	}

	if got := atomic.LoadInt64(calls); got != 0 {
		t.Errorf("upstream calls = %d, want 0", got)
	}
}

func TestGenerateInvalidOperation(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	router, calls := newGenerateRouter(t, replyWith("irrelevant"))

	rec := postJSON(t, router, "/api/v1/ai/text-operations", map[string]interface{}{
		"text":      "hello world",
		"operation": "translate",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if body := decodeBody(t, rec); body["error"] != "Invalid operation type" {
		t.Errorf("error = %q, want %q", body["error"], "Invalid operation type")
	}
	if got := atomic.LoadInt64(calls); got != 0 {
		t.Errorf("upstream calls = %d, want 0", got)
	}
}

func TestGenerateNotConfigured(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	router, calls := newGenerateRouter(t, replyWith("irrelevant"))

	rec := postJSON(t, router, "/api/v1/ai/generate-hooks", map[string]interface{}{
		"topic":       "sourdough starters",
		"contentType": "blog",
	})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	body := decodeBody(t, rec)
	want := "Anthropic API key not configured. Please add your API key in Settings."
	if body["error"] != want {
		t.Errorf("error = %q, want %q", body["error"], want)
	}
	if got := atomic.LoadInt64(calls); got != 0 {
		t.Errorf("upstream calls = %d, want 0", got)
	}
}

func TestGenerateOutlineFencedResponse(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	reply := "```json\n{\"sections\":[{\"id\":1,\"heading\":\"Why starters fail\",\"keyPoints\":[\"Overfeeding\",\"Cold kitchens\"]}],\"cta\":\"Bake your first loaf\"}\n```"
	router, calls := newGenerateRouter(t, replyWith(reply))

	rec := postJSON(t, router, "/api/v1/ai/generate-outline", map[string]interface{}{
		"topic":       "sourdough starters",
		"hook":        "Most starters die in week one",
		"contentType": "blog",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	body := decodeBody(t, rec)
	outline, ok := body["outline"].(map[string]interface{})
	if !ok {
		t.Fatalf("outline missing from response: %v", body)
	}
	sections, ok := outline["sections"].([]interface{})
	if !ok || len(sections) != 1 {
		t.Fatalf("sections = %v, want 1 entry", outline["sections"])
	}
	first := sections[0].(map[string]interface{})
	if first["heading"] != "Why starters fail" {
		t.Errorf("section heading = %q, want %q", first["heading"], "Why starters fail")
	}
	if got := atomic.LoadInt64(calls); got != 1 {
		t.Errorf("upstream calls = %d, want 1", got)
	}
}

func TestGenerateOutlineRefusalServesFallback(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	router, _ := newGenerateRouter(t, replyWith("Sorry, I can't help with that."))

	rec := postJSON(t, router, "/api/v1/ai/generate-outline", map[string]interface{}{
		"topic":       "sourdough starters",
		"hook":        "Most starters die in week one",
		"contentType": "blog",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := decodeBody(t, rec)
	outline, ok := body["outline"].(map[string]interface{})
	if !ok {
		t.Fatalf("outline missing from response: %v", body)
	}
	sections, ok := outline["sections"].([]interface{})
	if !ok || len(sections) != 4 {
		t.Fatalf("fallback sections = %v, want 4 entries", outline["sections"])
	}
	first := sections[0].(map[string]interface{})
	if first["heading"] != "Introduction to sourdough starters" {
		t.Errorf("fallback heading = %q, want %q", first["heading"], "Introduction to sourdough starters")
	}
}

func TestGenerateUpstreamFailure(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	failing := func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"type":"overloaded_error"}}`, http.StatusServiceUnavailable)
	}

	tests := []struct {
		name        string
		path        string
		body        map[string]interface{}
		wantErr     string
		wantDetails bool
	}{
		{
			name: "ideas includes details",
			path: "/api/v1/ai/generate-ideas",
			body: map[string]interface{}{
				"businessDescription": "a bakery",
				"contentTypes":        []string{"blog"},
			},
			wantErr:     "Failed to generate ideas from AI",
			wantDetails: true,
		},
		{
			name: "hooks omits details",
			path: "/api/v1/ai/generate-hooks",
			body: map[string]interface{}{
				"topic":       "sourdough",
				"contentType": "blog",
			},
			wantErr: "Failed to generate hooks from AI",
		},
		{
			name: "outline omits details",
			path: "/api/v1/ai/generate-outline",
			body: map[string]interface{}{
				"topic":       "sourdough",
				"hook":        "a hook",
				"contentType": "blog",
			},
			wantErr: "Failed to generate outline from AI",
		},
		{
			name: "text operation omits details",
			path: "/api/v1/ai/text-operations",
			body: map[string]interface{}{
				"text":      "hello",
				"operation": "improve",
			},
			wantErr: "Failed to process text with AI",
		},
		{
			name: "analyze omits details",
			path: "/api/v1/ai/analyze-content",
			body: map[string]interface{}{
				"text": "hello world",
			},
			wantErr: "Failed to analyze content with AI",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newGenerateRouter(t, failing)
			rec := postJSON(t, router, tt.path, tt.body)
			if rec.Code != http.StatusInternalServerError {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
			}
			body := decodeBody(t, rec)
			if body["error"] != tt.wantErr {
				t.Errorf("error = %q, want %q", body["error"], tt.wantErr)
			}
			if _, has := body["details"]; has != tt.wantDetails {
				t.Errorf("details present = %v, want %v", has, tt.wantDetails)
			}
		})
	}
}

func TestTextOperationReturnsVerbatimResult(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	reply := "```\nAn improved sentence.\n```"
	router, _ := newGenerateRouter(t, replyWith(reply))

	rec := postJSON(t, router, "/api/v1/ai/text-operations", map[string]interface{}{
		"text":      "a sentence",
		"operation": "improve",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := decodeBody(t, rec)
	if body["result"] != reply {
		t.Errorf("result = %q, want raw reply %q", body["result"], reply)
	}
}

func TestGenerateHooksCleanResponse(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	hooks := []string{"Hook one", "Hook two", "Hook three"}
	raw, _ := json.Marshal(hooks)
	router, _ := newGenerateRouter(t, replyWith(fmt.Sprintf("Here you go:\n%s", raw)))

	rec := postJSON(t, router, "/api/v1/ai/generate-hooks", map[string]interface{}{
		"topic":       "sourdough",
		"contentType": "blog",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := decodeBody(t, rec)
	got, ok := body["hooks"].([]interface{})
	if !ok || len(got) != 3 {
		t.Fatalf("hooks = %v, want 3 entries", body["hooks"])
	}
	if got[0] != "Hook one" {
		t.Errorf("hooks[0] = %q, want %q", got[0], "Hook one")
	}
}
