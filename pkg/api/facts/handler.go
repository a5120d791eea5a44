// Package facts exposes the Fetcher as a JSON API.
package facts

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/chiefgooter/sec-financial-app/pkg/api/middleware"
	"github.com/chiefgooter/sec-financial-app/pkg/core/analysis"
	coreFacts "github.com/chiefgooter/sec-financial-app/pkg/core/facts"
	"github.com/chiefgooter/sec-financial-app/pkg/core/llm"
)

// Lookuper fetches a snapshot for free-form input.
type Lookuper interface {
	Lookup(ctx context.Context, input string) (*coreFacts.Snapshot, error)
}

// Summarizer produces analyst reports.
type Summarizer interface {
	Available() bool
	Summarize(ctx context.Context, snap *coreFacts.Snapshot) (*analysis.Report, error)
}

// SummaryRequest for POST /api/facts/summary
type SummaryRequest struct {
	CIK string `json:"cik"` // CIK or ticker
}

// SummaryResponse carries the rendered analyst report alongside its snapshot.
type SummaryResponse struct {
	Snapshot *coreFacts.Snapshot `json:"snapshot"`
	Markdown string              `json:"markdown"`
	HTML     string              `json:"html"`
	Provider string              `json:"provider"`
	Sources  []llm.Citation      `json:"sources,omitempty"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// Handler holds dependencies for the facts endpoints
type Handler struct {
	fetcher Lookuper
	analyst Summarizer
}

// NewHandler creates a new facts handler. analyst may be nil.
func NewHandler(fetcher Lookuper, analyst Summarizer) *Handler {
	return &Handler{fetcher: fetcher, analyst: analyst}
}

// HandleFacts handles GET /api/facts?cik=
func (h *Handler) HandleFacts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	input := r.URL.Query().Get("cik")
	if input == "" {
		input = r.URL.Query().Get("ticker")
	}

	snap, err := h.fetcher.Lookup(r.Context(), input)
	if err != nil {
		h.fail(w, r, input, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// HandleSummary handles POST /api/facts/summary
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if h.analyst == nil || !h.analyst.Available() {
		writeError(w, r, http.StatusServiceUnavailable, analysis.ErrUnavailable.Error())
		return
	}

	var req SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	snap, err := h.fetcher.Lookup(r.Context(), req.CIK)
	if err != nil {
		h.fail(w, r, req.CIK, err)
		return
	}

	report, err := h.analyst.Summarize(r.Context(), snap)
	switch {
	case errors.Is(err, analysis.ErrNoData):
		writeError(w, r, http.StatusUnprocessableEntity, coreFacts.Describe(coreFacts.ErrNotFound))
		return
	case errors.Is(err, analysis.ErrUnavailable):
		writeError(w, r, http.StatusServiceUnavailable, err.Error())
		return
	case err != nil:
		log.Printf("[FactsAPI] %s summary for %s failed: %v", middleware.RequestID(r.Context()), snap.CIK, err)
		writeError(w, r, http.StatusBadGateway, "The AI summary could not be generated.")
		return
	}

	writeJSON(w, http.StatusOK, SummaryResponse{
		Snapshot: snap,
		Markdown: report.Markdown,
		HTML:     report.HTML,
		Provider: report.Provider,
		Sources:  report.Sources,
	})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, input string, err error) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[FactsAPI] %s lookup %q failed: %v", middleware.RequestID(r.Context()), strings.TrimSpace(input), err)
	}
	writeError(w, r, status, coreFacts.Describe(err))
}

// StatusFor maps a Fetcher error to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, coreFacts.ErrInvalidIdentifier):
		return http.StatusBadRequest
	case errors.Is(err, coreFacts.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, coreFacts.ErrNetwork), errors.Is(err, coreFacts.ErrMalformedResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[FactsAPI] failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg, RequestID: middleware.RequestID(r.Context())})
}
