package agent

import (
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/chiefgooter/sec-financial-app/pkg/core/llm"
)

type Config struct {
	ActiveProvider string                 `yaml:"active_provider"`
	Agents         map[string]AgentConfig `yaml:"agents"`
}

type AgentConfig struct {
	Provider     string `yaml:"provider"` // Optional override
	Model        string `yaml:"model"`
	GoogleSearch bool   `yaml:"google_search"` // ground answers in web search
	Description  string `yaml:"description"`
}

// Manager picks the LLM provider for each agent role.
type Manager struct {
	mu        sync.RWMutex
	config    Config
	providers map[string]llm.Provider
}

// NewManager registers the built-in providers. Extra providers (tests, or
// alternative backends) override built-ins with the same name.
func NewManager(config Config, extra ...llm.Provider) *Manager {
	m := &Manager{
		config:    config,
		providers: map[string]llm.Provider{},
	}
	for _, p := range []llm.Provider{
		&llm.GeminiProvider{},
		&llm.GeminiClassicProvider{},
		&llm.DeepSeekProvider{},
	} {
		m.providers[p.Name()] = p
	}
	for _, p := range extra {
		m.providers[p.Name()] = p
	}
	return m
}

// GetProvider returns the provider for agentType, or nil when none is
// configured or the configured one has no credentials.
func (m *Manager) GetProvider(agentType string) llm.Provider {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name := m.config.ActiveProvider
	if agentConfig, ok := m.config.Agents[agentType]; ok && agentConfig.Provider != "" {
		name = agentConfig.Provider
	}
	p, ok := m.providers[name]
	if !ok || !p.Ready() {
		return nil
	}
	return p
}

// Options returns the generation options configured for agentType.
func (m *Manager) Options(agentType string) llm.Options {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cfg := m.config.Agents[agentType]
	return llm.Options{Model: cfg.Model, GoogleSearch: cfg.GoogleSearch}
}

func (m *Manager) SetGlobalProvider(newProvider string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.providers[newProvider]; !ok {
		return fmt.Errorf("provider %s not found", newProvider)
	}
	m.config.ActiveProvider = newProvider
	log.Printf("[Agent] Global provider set to: %s", newProvider)
	return nil
}

func (m *Manager) GetActiveProvider() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.ActiveProvider
}

// Available lists registered provider names, sorted.
func (m *Manager) Available() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.providers))
	for name := range m.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
