package config

import (
	"encoding/json"
	"net/http"

	"github.com/chiefgooter/sec-financial-app/pkg/core/agent"
	"github.com/chiefgooter/sec-financial-app/pkg/core/analysis"
	"github.com/chiefgooter/sec-financial-app/pkg/core/facts"
)

type Response struct {
	ActiveProvider string   `json:"active_provider"`
	Available      []string `json:"available"`
	Metrics        []string `json:"metrics"`
	UserAgent      string   `json:"user_agent"`
	Switchable     bool     `json:"switchable"`
}

type SwitchRequest struct {
	Provider string `json:"provider"`
}

type SwitchResponse struct {
	ActiveProvider string `json:"active_provider"`
	Ready          bool   `json:"ready"`
}

// Handler holds dependencies for config endpoints
type Handler struct {
	AgentMgr  *agent.Manager
	Metrics   []facts.Metric
	UserAgent string

	// AllowSwitch enables HandleSwitch; the provider choice is global.
	AllowSwitch bool
}

// NewHandler creates a new config handler
func NewHandler(agentMgr *agent.Manager, metrics []facts.Metric, userAgent string) *Handler {
	return &Handler{
		AgentMgr:  agentMgr,
		Metrics:   metrics,
		UserAgent: userAgent,
	}
}

// HandleConfig handles GET /api/config
func (h *Handler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(h.Metrics))
	for _, m := range h.Metrics {
		names = append(names, m.Name)
	}

	resp := Response{
		ActiveProvider: h.AgentMgr.GetActiveProvider(),
		Available:      h.AgentMgr.Available(),
		Metrics:        names,
		UserAgent:      h.UserAgent,
		Switchable:     h.AllowSwitch,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// HandleSwitch handles POST /api/config/switch
func (h *Handler) HandleSwitch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !h.AllowSwitch {
		http.Error(w, "Provider switching is disabled (set allow_provider_switch)", http.StatusForbidden)
		return
	}

	var req SwitchRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	err = h.AgentMgr.SetGlobalProvider(req.Provider)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// A provider without credentials can be selected but will not serve.
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SwitchResponse{
		ActiveProvider: req.Provider,
		Ready:          h.AgentMgr.GetProvider(analysis.AgentType) != nil,
	})
}
