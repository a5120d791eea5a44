package analysis

import (
	"context"
	"errors"

	"github.com/chiefgooter/sec-financial-app/pkg/core/agent"
	"github.com/chiefgooter/sec-financial-app/pkg/core/facts"
)

// ErrUnavailable is returned when no LLM provider is configured.
var ErrUnavailable = errors.New("analyst summaries are not configured")

// Service resolves the analyst provider from the agent manager on every
// call, so switching providers at runtime takes effect immediately.
type Service struct {
	mgr *agent.Manager
}

// NewService creates a Service backed by mgr.
func NewService(mgr *agent.Manager) *Service {
	return &Service{mgr: mgr}
}

// Available reports whether a ready provider is configured.
func (s *Service) Available() bool {
	return s != nil && s.mgr != nil && s.mgr.GetProvider(AgentType) != nil
}

// Summarize delegates to an Analyst built for the current provider.
func (s *Service) Summarize(ctx context.Context, snap *facts.Snapshot) (*Report, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}
	return NewAnalyst(s.mgr.GetProvider(AgentType), s.mgr.Options(AgentType)).Summarize(ctx, snap)
}
