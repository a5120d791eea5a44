// Package analysis produces short analyst-style summaries of a facts snapshot
// using a configured LLM provider.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/chiefgooter/sec-financial-app/pkg/core/facts"
	"github.com/chiefgooter/sec-financial-app/pkg/core/llm"
	"github.com/chiefgooter/sec-financial-app/pkg/core/prompt"
	"github.com/chiefgooter/sec-financial-app/pkg/core/utils"
)

// AgentType is the role name used to pick a provider from agent.Manager.
const AgentType = "analyst"

// ErrNoData is returned when a snapshot has nothing to summarize.
var ErrNoData = errors.New("snapshot has no facts to summarize")

// PromptID names the prompt library entry used for summaries.
const PromptID = "analysis.summary"

// Summary is the structured answer requested from the model.
type Summary struct {
	Summary   string   `json:"summary"`
	Strengths []string `json:"strengths"`
	Risks     []string `json:"risks"`
}

// Report is a rendered summary. HTML covers the summary only; Markdown also
// lists the cited sources of a grounded answer.
type Report struct {
	Markdown string         `json:"markdown"`
	HTML     string         `json:"html"`
	Provider string         `json:"provider"`
	Grounded bool           `json:"grounded"`
	Sources  []llm.Citation `json:"sources,omitempty"`
}

// Analyst turns snapshots into reports.
type Analyst struct {
	provider llm.Provider
	opts     llm.Options
}

// NewAnalyst creates an Analyst using provider. A JSON reply is always
// requested; opts carries the model override and search grounding.
func NewAnalyst(provider llm.Provider, opts llm.Options) *Analyst {
	opts.JSON = true
	return &Analyst{provider: provider, opts: opts}
}

// Summarize asks the model about snap and renders its answer.
func (a *Analyst) Summarize(ctx context.Context, snap *facts.Snapshot) (*Report, error) {
	if snap == nil || snap.Empty() {
		return nil, ErrNoData
	}

	pt, err := prompt.Get().GetPrompt(PromptID)
	if err != nil {
		return nil, err
	}
	userPrompt, err := BuildPrompt(pt, snap)
	if err != nil {
		return nil, err
	}

	raw, err := a.provider.GenerateResponse(ctx, userPrompt, pt.SystemPrompt, a.opts)
	if err != nil {
		return nil, fmt.Errorf("analyst generation failed: %w", err)
	}
	raw, sources := llm.SplitCitations(raw)

	var s Summary
	var markdown string
	if _, err := utils.SmartParse(raw, &s); err == nil && s.Summary != "" {
		markdown = s.Markdown()
	} else {
		log.Printf("[Analyst] %s returned unstructured output, rendering as-is", a.provider.Name())
		markdown = utils.CleanMarkdown(raw)
	}

	html, err := utils.RenderHTML(markdown)
	if err != nil {
		return nil, err
	}
	html, err = utils.ExternalLinks(html)
	if err != nil {
		return nil, err
	}

	return &Report{
		Markdown: markdown + sourcesMarkdown(sources),
		HTML:     html,
		Provider: a.provider.Name(),
		Grounded: a.opts.GoogleSearch,
		Sources:  sources,
	}, nil
}

// BuildPrompt renders pt's user template with the snapshot figures, one
// per line.
func BuildPrompt(pt *prompt.PromptTemplate, snap *facts.Snapshot) (string, error) {
	data := struct {
		Company string
		CIK     string
		Figures []string
		Missing string
	}{
		Company: snap.EntityName,
		CIK:     snap.CIK,
		Missing: strings.Join(snap.Missing, ", "),
	}
	if data.Company == "" {
		data.Company = "CIK " + snap.CIK
	}
	for _, f := range snap.Facts {
		data.Figures = append(data.Figures, fmt.Sprintf("%s: %s (%s, period ending %s, %s %s)",
			f.Metric, facts.FormatValue(f), f.Unit, f.PeriodEnd.Format("2006-01-02"), f.Form, period(f)))
	}
	return pt.RenderUserPrompt(data)
}

func period(f facts.Fact) string {
	if f.FiscalYear == 0 {
		return f.FiscalPeriod
	}
	return fmt.Sprintf("FY%d %s", f.FiscalYear, f.FiscalPeriod)
}

// Markdown renders the structured summary.
func (s Summary) Markdown() string {
	var b strings.Builder
	b.WriteString("### Summary\n\n")
	b.WriteString(strings.TrimSpace(s.Summary))
	b.WriteString("\n")
	writeList(&b, "Strengths", s.Strengths)
	writeList(&b, "Risks", s.Risks)
	return b.String()
}

func sourcesMarkdown(sources []llm.Citation) string {
	if len(sources) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\n### Cited Sources (%d)\n\n", len(sources))
	for _, s := range sources {
		fmt.Fprintf(&b, "- [%s](%s)\n", s.Title, s.URI)
	}
	return b.String()
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n### %s\n\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", strings.TrimSpace(item))
	}
}
