package agent

import (
	"context"
	"testing"

	"github.com/chiefgooter/sec-financial-app/pkg/core/llm"
)

type stubProvider struct {
	name  string
	ready bool
}

func (s *stubProvider) Name() string { return s.name }
func (s *stubProvider) Ready() bool  { return s.ready }
func (s *stubProvider) GenerateResponse(ctx context.Context, prompt, systemPrompt string, opts llm.Options) (string, error) {
	return s.name, nil
}

func TestManager_GetProvider(t *testing.T) {
	cfg := Config{
		ActiveProvider: "stub",
		Agents: map[string]AgentConfig{
			"analyst": {Provider: "other", Model: "m-1", GoogleSearch: true},
		},
	}
	m := NewManager(cfg, &stubProvider{name: "stub", ready: true}, &stubProvider{name: "other", ready: true})

	if p := m.GetProvider("summary"); p == nil || p.Name() != "stub" {
		t.Errorf("expected global provider stub, got %v", p)
	}
	if p := m.GetProvider("analyst"); p == nil || p.Name() != "other" {
		t.Errorf("expected agent override other, got %v", p)
	}
	if m.Options("analyst").Model != "m-1" || m.Options("summary").Model != "" {
		t.Errorf("unexpected model overrides")
	}
	if !m.Options("analyst").GoogleSearch || m.Options("summary").GoogleSearch {
		t.Errorf("google search should only be enabled for the analyst")
	}
}

func TestManager_NotReadyOrUnknown(t *testing.T) {
	m := NewManager(Config{ActiveProvider: "cold"}, &stubProvider{name: "cold", ready: false})
	if p := m.GetProvider("analyst"); p != nil {
		t.Errorf("provider without credentials should be hidden, got %s", p.Name())
	}

	m = NewManager(Config{})
	if p := m.GetProvider("analyst"); p != nil {
		t.Errorf("no active provider should yield nil, got %s", p.Name())
	}
}

func TestManager_SetGlobalProvider(t *testing.T) {
	m := NewManager(Config{ActiveProvider: "gemini"}, &stubProvider{name: "stub", ready: true})

	if err := m.SetGlobalProvider("stub"); err != nil {
		t.Fatalf("SetGlobalProvider: %v", err)
	}
	if m.GetActiveProvider() != "stub" {
		t.Errorf("active provider = %q", m.GetActiveProvider())
	}
	if err := m.SetGlobalProvider("nope"); err == nil {
		t.Error("expected error for unknown provider")
	}

	want := []string{"deepseek", "gemini", "gemini-classic", "stub"}
	got := m.Available()
	if len(got) != len(want) {
		t.Fatalf("Available() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Available()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
