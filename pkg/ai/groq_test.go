package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dealinsight-dev/deal-insight/pkg/config"
)

func newTestClient(baseURL string) *GroqClient {
	return &GroqClient{
		apiKey:  "test-key",
		baseURL: baseURL,
		model:   "test-model",
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func TestGenerateCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/openai/v1/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected authorization header: %s", got)
		}

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Model != "test-model" {
			t.Errorf("unexpected model: %s", req.Model)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"roles\":[]}"}}]}`))
	}))
	defer server.Close()

	g := newTestClient(server.URL)

	content, err := g.GenerateCompletion(context.Background(), "classify these participants")
	if err != nil {
		t.Fatalf("GenerateCompletion returned error: %v", err)
	}
	if content != `{"roles":[]}` {
		t.Errorf("unexpected content: %s", content)
	}
}

func TestGenerateCompletionServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	g := newTestClient(server.URL)

	if _, err := g.GenerateCompletion(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for 429 response")
	}
}

func TestGenerateCompletionEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	g := newTestClient(server.URL)

	if _, err := g.GenerateCompletion(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestNewGroqClientDefaults(t *testing.T) {
	g := NewGroqClient(&config.ClassifierConfig{APIKey: "k"})
	if g.model != defaultModel {
		t.Errorf("expected default model, got %s", g.model)
	}
	if g.baseURL == "" {
		t.Error("expected non-empty base URL")
	}
}
