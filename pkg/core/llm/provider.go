// Package llm wraps the language-model backends used for analyst summaries.
package llm

import (
	"context"
	"errors"
)

// ErrMissingAPIKey is returned when a provider has no credentials configured.
var ErrMissingAPIKey = errors.New("LLM API key not configured")

// Options tunes a single generation call.
type Options struct {
	Model string // overrides the provider default when set
	JSON  bool   // ask the model for a JSON object

	// GoogleSearch grounds the answer in web search results. Providers that
	// support it append the cited sources (see AppendCitations).
	GoogleSearch bool
}

// Provider is the interface for all LLM providers.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, opts Options) (string, error)
	// Name identifies the provider in logs and the config endpoint.
	Name() string
	// Ready reports whether credentials are available.
	Ready() bool
}
