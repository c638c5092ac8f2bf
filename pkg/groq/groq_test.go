package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	t.Run("Missing API Key", func(t *testing.T) {
		cfg := Config{}
		if err := cfg.Validate(); err == nil {
			t.Errorf("expected error for missing API key")
		}
	})

	t.Run("Defaults Applied", func(t *testing.T) {
		cfg := Config{APIKey: "test-key"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Model != DefaultModel {
			t.Errorf("expected default model, got %s", cfg.Model)
		}
		if cfg.BaseURL != DefaultBaseURL {
			t.Errorf("expected default base URL, got %s", cfg.BaseURL)
		}
		if cfg.HTTPClient == nil {
			t.Errorf("expected default HTTP client")
		}
	})
}

func TestGenerateContent(t *testing.T) {
	t.Run("Successful Completion", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
				t.Errorf("unexpected auth header: %s", got)
			}
			var req chatCompletionRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("failed to decode request: %v", err)
			}
			if len(req.Messages) != 2 {
				t.Errorf("expected 2 messages, got %d", len(req.Messages))
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"choices": [{"message": {"role": "assistant", "content": "  Gentle stretching can help.  "}}],
				"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
			}`))
		}))
		defer ts.Close()

		client := newGroqImpl(Config{APIKey: "test-key", Model: DefaultModel, HTTPClient: ts.Client()})
		client.SetBaseURL(ts.URL)

		resp, err := client.GenerateContent(context.Background(), &Request{
			Messages: []Message{
				{Role: "system", Content: "be gentle"},
				{Role: "user", Content: "my knees ache"},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Content != "Gentle stretching can help." {
			t.Errorf("expected trimmed content, got %q", resp.Content)
		}
		if resp.Usage.TotalTokens != 15 {
			t.Errorf("expected 15 total tokens, got %d", resp.Usage.TotalTokens)
		}
	})

	t.Run("API Error Status", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error": "rate limited"}`))
		}))
		defer ts.Close()

		client := newGroqImpl(Config{APIKey: "test-key", Model: DefaultModel, HTTPClient: ts.Client()})
		client.SetBaseURL(ts.URL)

		_, err := client.GenerateContent(context.Background(), &Request{
			Messages: []Message{{Role: "user", Content: "hi"}},
		})
		if err == nil {
			t.Errorf("expected error on 429")
		}
	})

	t.Run("Empty Choices", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"choices": []}`))
		}))
		defer ts.Close()

		client := newGroqImpl(Config{APIKey: "test-key", Model: DefaultModel, HTTPClient: ts.Client()})
		client.SetBaseURL(ts.URL)

		_, err := client.GenerateContent(context.Background(), &Request{
			Messages: []Message{{Role: "user", Content: "hi"}},
		})
		if err == nil {
			t.Errorf("expected error on empty choices")
		}
	})
}
