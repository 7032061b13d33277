package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing API key")
	}

	cfg = Config{APIKey: "k"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != DefaultModel {
		t.Errorf("model = %q, want %q", cfg.Model, DefaultModel)
	}
	if cfg.APIURL != DefaultAPIURL {
		t.Errorf("api url = %q, want %q", cfg.APIURL, DefaultAPIURL)
	}
	if cfg.HTTPClient == nil {
		t.Error("expected default http client")
	}
}

func TestGenerateContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/models/test-model:generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "secret" {
			t.Errorf("missing api key")
		}

		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.SystemInstruction == nil || req.SystemInstruction.Parts[0].Text != "be brief" {
			t.Errorf("system instruction not forwarded: %+v", req.SystemInstruction)
		}
		if len(req.Contents) != 1 || req.Contents[0].Role != "user" {
			t.Errorf("unexpected contents: %+v", req.Contents)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "Paris"}, {"text": "."}]}, "finishReason": "STOP"}],
			"usageMetadata": {"promptTokenCount": 7, "candidatesTokenCount": 2, "totalTokenCount": 9}
		}`))
	}))
	defer server.Close()

	client, err := New(Config{APIKey: "secret", Model: "test-model", APIURL: server.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &Request{
		SystemInstruction: "be brief",
		Messages:          []Content{{Role: "user", Text: "capital of France?"}},
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if resp.Text != "Paris." {
		t.Errorf("text = %q, want %q", resp.Text, "Paris.")
	}
	if resp.FinishReason != "STOP" {
		t.Errorf("finish reason = %q", resp.FinishReason)
	}
	if resp.Usage.TotalTokens != 9 || resp.Usage.InputTokens != 7 {
		t.Errorf("unexpected usage: %+v", resp.Usage)
	}
	if client.Model() != "test-model" {
		t.Errorf("model = %q", client.Model())
	}
}

func TestGenerateContent_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"code": 429, "message": "quota exceeded", "status": "RESOURCE_EXHAUSTED"}}`))
	}))
	defer server.Close()

	client, _ := New(Config{APIKey: "k", APIURL: server.URL})
	_, err := client.GenerateContent(context.Background(), &Request{
		Messages: []Content{{Role: "user", Text: "hi"}},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("error should carry API message, got %v", err)
	}
}

func TestGenerateContent_EmptyRequest(t *testing.T) {
	client, _ := New(Config{APIKey: "k"})
	if _, err := client.GenerateContent(context.Background(), &Request{}); err == nil {
		t.Fatal("expected error for empty request")
	}
}

func TestTransformRequest_AssistantRole(t *testing.T) {
	g := newGeminiImpl(Config{APIKey: "k", Model: "m", APIURL: "u"})
	req := g.transformRequest(&Request{
		Messages:    []Content{{Role: "user", Text: "a"}, {Role: "assistant", Text: "b"}},
		Temperature: 0.2,
	})
	if req.Contents[1].Role != "model" {
		t.Errorf("assistant role should map to model, got %q", req.Contents[1].Role)
	}
	if req.GenerationConfig == nil || req.GenerationConfig.Temperature != 0.2 {
		t.Errorf("generation config not set: %+v", req.GenerationConfig)
	}
}
