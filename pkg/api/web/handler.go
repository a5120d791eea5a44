// Package web serves the browser UI: one input field, one submit action and
// a table of the latest reported figures.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/chiefgooter/sec-financial-app/pkg/api/middleware"
	"github.com/chiefgooter/sec-financial-app/pkg/core/analysis"
	"github.com/chiefgooter/sec-financial-app/pkg/core/facts"
	"github.com/chiefgooter/sec-financial-app/pkg/core/llm"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTmpl = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Lookuper fetches a snapshot for free-form input. *facts.Fetcher satisfies it.
type Lookuper interface {
	Lookup(ctx context.Context, input string) (*facts.Snapshot, error)
}

// Summarizer produces analyst reports. *analysis.Service satisfies it.
type Summarizer interface {
	Available() bool
	Summarize(ctx context.Context, snap *facts.Snapshot) (*analysis.Report, error)
}

// Handler renders the index page.
type Handler struct {
	fetcher Lookuper
	analyst Summarizer
}

// NewHandler creates the page handler. analyst may be nil.
func NewHandler(fetcher Lookuper, analyst Summarizer) *Handler {
	return &Handler{fetcher: fetcher, analyst: analyst}
}

type message struct {
	Kind string // "info" or "error"
	Text string
}

type row struct {
	Metric  string
	Concept string
	Value   string
	Full    string
	Unit    string
	Period  string
	Form    string
	Filed   string
}

type page struct {
	Query           string
	WantSummary     bool
	CanSummarize    bool
	Messages        []message
	Snapshot        *facts.Snapshot
	Title           string
	Rows            []row
	SummaryHTML     template.HTML
	SummaryProvider string
	SummaryGrounded bool
	SummarySources  []llm.Citation
}

// ServeHTTP handles GET /. With ?q= it runs one lookup and renders the result;
// failures become messages on the page, never a broken response.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	p := &page{
		Query:        strings.TrimSpace(r.URL.Query().Get("q")),
		WantSummary:  r.URL.Query().Get("summary") == "1",
		CanSummarize: h.analyst != nil && h.analyst.Available(),
	}
	if p.Query != "" {
		h.lookup(r.Context(), p)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, p); err != nil {
		log.Printf("[Web] %s template error: %v", middleware.RequestID(r.Context()), err)
	}
}

func (h *Handler) lookup(ctx context.Context, p *page) {
	reqID := middleware.RequestID(ctx)

	snap, err := h.fetcher.Lookup(ctx, p.Query)
	if err != nil {
		if !errors.Is(err, facts.ErrNotFound) && !errors.Is(err, facts.ErrInvalidIdentifier) {
			log.Printf("[Web] %s lookup %q failed: %v", reqID, p.Query, err)
		}
		p.Messages = append(p.Messages, message{Kind: "error", Text: facts.Describe(err)})
		return
	}

	p.Snapshot = snap
	p.Title = snap.EntityName
	if p.Title == "" {
		p.Title = "CIK " + snap.CIK
	}
	p.Rows = rows(snap)

	if snap.Empty() {
		p.Messages = append(p.Messages, message{Kind: "info", Text: "No financial data is available for this company."})
		return
	}
	if len(snap.Missing) > 0 {
		p.Messages = append(p.Messages, message{Kind: "info", Text: "Not reported: " + strings.Join(snap.Missing, ", ") + "."})
	}

	if p.WantSummary && p.CanSummarize {
		report, err := h.analyst.Summarize(ctx, snap)
		if err != nil {
			log.Printf("[Web] %s summary for %s failed: %v", reqID, snap.CIK, err)
			p.Messages = append(p.Messages, message{Kind: "error", Text: "The AI summary could not be generated."})
			return
		}
		p.SummaryHTML = template.HTML(report.HTML)
		p.SummaryProvider = report.Provider
		p.SummaryGrounded = report.Grounded
		p.SummarySources = report.Sources
	}
}

func rows(snap *facts.Snapshot) []row {
	out := make([]row, 0, len(snap.Facts))
	for _, f := range snap.Facts {
		r := row{
			Metric:  f.Metric,
			Concept: f.Concept,
			Value:   facts.FormatCompact(f),
			Full:    facts.FormatValue(f),
			Unit:    f.Unit,
			Period:  f.PeriodEnd.Format("2006-01-02"),
			Form:    f.Form,
		}
		if f.FiscalYear != 0 {
			r.Period += fmt.Sprintf(" (FY%d %s)", f.FiscalYear, f.FiscalPeriod)
		}
		if !f.Filed.IsZero() {
			r.Filed = f.Filed.Format("2006-01-02")
		}
		out = append(out, r)
	}
	return out
}
