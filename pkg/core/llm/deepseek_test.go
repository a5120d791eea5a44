package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDeepSeekProvider_GenerateResponse(t *testing.T) {
	var got deepSeekRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"choices": [{"message": {"content": "{\"summary\": \"ok\"}"}}]}`))
	}))
	defer srv.Close()

	p := &DeepSeekProvider{APIKey: "k", URL: srv.URL}
	out, err := p.GenerateResponse(context.Background(), "user", "system", Options{JSON: true})
	if err != nil {
		t.Fatalf("GenerateResponse failed: %v", err)
	}
	if out != `{"summary": "ok"}` {
		t.Errorf("unexpected content %q", out)
	}
	if auth != "Bearer k" {
		t.Errorf("Authorization = %q", auth)
	}
	if got.ResponseFormat.Type != "json_object" || got.Model != "deepseek-chat" {
		t.Errorf("unexpected request %+v", got)
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != "system" || got.Messages[1].Content != "user" {
		t.Errorf("unexpected messages %+v", got.Messages)
	}
}

func TestDeepSeekProvider_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	p := &DeepSeekProvider{APIKey: "bad", URL: srv.URL}
	if _, err := p.GenerateResponse(context.Background(), "u", "s", Options{}); err == nil {
		t.Error("expected error on 401")
	}

	t.Setenv("DEEPSEEK_API_KEY", "")
	missing := &DeepSeekProvider{URL: srv.URL}
	if missing.Ready() {
		t.Error("provider without key should not be ready")
	}
	if _, err := missing.GenerateResponse(context.Background(), "u", "s", Options{}); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("expected ErrMissingAPIKey, got %v", err)
	}
}
