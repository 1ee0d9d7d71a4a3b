package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/contentflowhq/contentflow-backend/internal/models"
)

type stubKeyStore struct {
	key      *models.ProviderKey
	err      error
	touched  []string
	touchErr error
}

func (s *stubKeyStore) GetActiveKey(userID, provider string) (*models.ProviderKey, error) {
	return s.key, s.err
}

func (s *stubKeyStore) TouchLastUsed(id string) error {
	s.touched = append(s.touched, id)
	return s.touchErr
}

func newUpstream(t *testing.T, calls *atomic.Int64, reply string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"content": []map[string]string{{"type": "text", "text": reply}},
		})
	}))
}

func TestServiceNotConfiguredMakesNoUpstreamCall(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	var calls atomic.Int64
	srv := newUpstream(t, &calls, "unused")
	defer srv.Close()

	svc := &Service{client: NewClient(testConfig(srv.URL))}

	_, err := svc.GenerateHooks(context.Background(), "", &models.GenerateHooksRequest{
		Topic:       "testing",
		ContentType: "blog",
	})

	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("error = %v, want ErrNotConfigured", err)
	}
	if err.Error() != "Anthropic API key not configured. Please add your API key in Settings." {
		t.Errorf("error message = %q", err.Error())
	}
	if calls.Load() != 0 {
		t.Errorf("upstream calls = %d, want 0", calls.Load())
	}
}

func TestServiceUserKeyBeatsSharedKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-shared")

	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		w.Write([]byte(`{"content":[{"type":"text","text":"[\"hook\"]"}]}`))
	}))
	defer srv.Close()

	keys := &stubKeyStore{
		key: &models.ProviderKey{
			ID:         "key-1",
			EncodedKey: base64.StdEncoding.EncodeToString([]byte("sk-user")),
		},
	}
	svc := &Service{client: NewClient(testConfig(srv.URL)), keys: keys}

	hooks, err := svc.GenerateHooks(context.Background(), "user-1", &models.GenerateHooksRequest{
		Topic:       "testing",
		ContentType: "blog",
	})
	if err != nil {
		t.Fatalf("GenerateHooks() error = %v", err)
	}

	if gotKey != "sk-user" {
		t.Errorf("x-api-key = %q, want the decoded user key", gotKey)
	}
	if len(keys.touched) != 1 || keys.touched[0] != "key-1" {
		t.Errorf("touched = %v, want [key-1]", keys.touched)
	}
	if len(hooks) != 1 || hooks[0] != "hook" {
		t.Errorf("hooks = %v", hooks)
	}
}

func TestServiceFallsBackToSharedKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-shared")

	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		w.Write([]byte(`{"content":[{"type":"text","text":"[\"hook\"]"}]}`))
	}))
	defer srv.Close()

	tests := []struct {
		name string
		keys KeyStore
	}{
		{"no key store", nil},
		{"no stored key", &stubKeyStore{}},
		{"lookup error", &stubKeyStore{err: errors.New("db down")}},
		{"undecodable key", &stubKeyStore{key: &models.ProviderKey{ID: "key-1", EncodedKey: "%%%not-base64%%%"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotKey = ""
			svc := &Service{client: NewClient(testConfig(srv.URL)), keys: tt.keys}

			_, err := svc.GenerateHooks(context.Background(), "user-1", &models.GenerateHooksRequest{
				Topic:       "testing",
				ContentType: "blog",
			})
			if err != nil {
				t.Fatalf("GenerateHooks() error = %v", err)
			}
			if gotKey != "sk-shared" {
				t.Errorf("x-api-key = %q, want sk-shared", gotKey)
			}
		})
	}
}

func TestServiceDefaultsCount(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-shared")

	var gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body anthropicRequestBody
		json.NewDecoder(r.Body).Decode(&body)
		gotPrompt = body.Messages[0].Content
		w.Write([]byte(`{"content":[{"type":"text","text":"[]"}]}`))
	}))
	defer srv.Close()

	svc := &Service{client: NewClient(testConfig(srv.URL))}

	_, err := svc.GenerateIdeas(context.Background(), "", &models.GenerateIdeasRequest{
		BusinessDescription: "bakery",
		ContentTypes:        []string{"blog"},
	})
	if err != nil {
		t.Fatalf("GenerateIdeas() error = %v", err)
	}

	if !strings.HasPrefix(gotPrompt, "Generate 5 creative content ideas") {
		t.Errorf("prompt does not default count to 5: %.60q", gotPrompt)
	}
}

func TestServiceTransformTextVerbatim(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-shared")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{\"content\":[{\"type\":\"text\",\"text\":\"```json\\nnot stripped\\n```\"}]}"))
	}))
	defer srv.Close()

	svc := &Service{client: NewClient(testConfig(srv.URL))}

	got, err := svc.TransformText(context.Background(), "", &models.TextOperationRequest{
		Text:      "hello",
		Operation: models.TextOpImprove,
	})
	if err != nil {
		t.Fatalf("TransformText() error = %v", err)
	}
	if got != "```json\nnot stripped\n```" {
		t.Errorf("result = %q, want the raw model reply", got)
	}
}

func TestServiceTransformTextInvalidOperation(t *testing.T) {
	var calls atomic.Int64
	srv := newUpstream(t, &calls, "unused")
	defer srv.Close()

	svc := &Service{client: NewClient(testConfig(srv.URL))}

	_, err := svc.TransformText(context.Background(), "", &models.TextOperationRequest{
		Text:      "hello",
		Operation: "summarize",
	})
	if err == nil {
		t.Fatal("expected error for unknown operation")
	}
	if calls.Load() != 0 {
		t.Errorf("upstream calls = %d, want 0", calls.Load())
	}
}

func TestServiceUpstreamErrorPropagates(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-shared")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("overloaded"))
	}))
	defer srv.Close()

	svc := &Service{client: NewClient(testConfig(srv.URL))}

	_, err := svc.AnalyzeContent(context.Background(), "", &models.AnalyzeContentRequest{Text: "body"})

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("error = %v, want *UpstreamError", err)
	}
	if upstream.Detail != "overloaded" {
		t.Errorf("Detail = %q", upstream.Detail)
	}
}
