// Package settings loads the application configuration from a yaml file and
// environment variables.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/chiefgooter/sec-financial-app/pkg/core/agent"
	"github.com/chiefgooter/sec-financial-app/pkg/core/facts"
	"github.com/chiefgooter/sec-financial-app/pkg/core/ingest"
)

// DefaultPath is read when APP_CONFIG is not set.
const DefaultPath = "config/app.yaml"

// Settings is the whole application configuration.
type Settings struct {
	ListenAddr string `yaml:"listen_addr"`

	SEC struct {
		UserAgent     string        `yaml:"user_agent"`
		CourtesyDelay time.Duration `yaml:"courtesy_delay"`
		Timeout       time.Duration `yaml:"timeout"`
	} `yaml:"sec"`

	Metrics []facts.Metric `yaml:"metrics"`

	// Analyst summaries are disabled when no provider is active.
	LLM agent.Config `yaml:"llm"`

	// AllowProviderSwitch enables POST /api/config/switch. The active
	// provider is shared by every visitor, so it is off by default.
	AllowProviderSwitch bool `yaml:"allow_provider_switch"`

	// PromptsDir overrides built-in prompts with JSON files, when set.
	PromptsDir string `yaml:"prompts_dir"`
}

// Default returns the built-in configuration.
func Default() *Settings {
	s := &Settings{ListenAddr: ":8080"}
	s.SEC.UserAgent = ingest.DefaultUserAgent
	s.SEC.CourtesyDelay = ingest.DefaultCourtesyGap
	s.SEC.Timeout = 30 * time.Second
	s.Metrics = facts.DefaultMetrics()
	return s
}

// Load reads path over the defaults and then applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	s.applyEnv()
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the config file location, honouring APP_CONFIG.
func Path() string {
	return getEnv("APP_CONFIG", DefaultPath)
}

func (s *Settings) applyEnv() {
	s.ListenAddr = getEnv("LISTEN_ADDR", s.ListenAddr)
	s.SEC.UserAgent = getEnv("SEC_USER_AGENT", s.SEC.UserAgent)
	s.LLM.ActiveProvider = getEnv("LLM_PROVIDER", s.LLM.ActiveProvider)
	s.PromptsDir = getEnv("PROMPTS_DIR", s.PromptsDir)
}

func (s *Settings) validate() error {
	if s.SEC.UserAgent == "" {
		return fmt.Errorf("sec.user_agent must not be empty: SEC rejects anonymous clients")
	}
	if len(s.Metrics) == 0 {
		s.Metrics = facts.DefaultMetrics()
	}
	for i, m := range s.Metrics {
		if m.Name == "" || len(m.Concepts) == 0 {
			return fmt.Errorf("metrics[%d]: name and at least one concept are required", i)
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
