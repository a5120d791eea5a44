package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/chiefgooter/sec-financial-app/pkg/core/facts"
	"github.com/chiefgooter/sec-financial-app/pkg/core/ingest"
	"github.com/chiefgooter/sec-financial-app/pkg/core/settings"
)

var commands = []subcommands.Command{
	&fetchCmd{},
	&resolveCmd{},
	&summarizeCmd{},
}

// app is the wiring every command needs.
type app struct {
	cfg     *settings.Settings
	client  *ingest.EDGARClient
	fetcher *facts.Fetcher
}

func newApp() (*app, error) {
	cfg, err := settings.Load(settings.Path())
	if err != nil {
		return nil, err
	}
	client := ingest.NewEDGARClient(
		ingest.WithHTTPClient(&http.Client{Timeout: cfg.SEC.Timeout}),
		ingest.WithUserAgent(cfg.SEC.UserAgent),
		ingest.WithCourtesyDelay(cfg.SEC.CourtesyDelay),
	)
	return &app{
		cfg:    cfg,
		client: client,
		fetcher: facts.NewFetcher(client,
			facts.WithResolver(ingest.NewTickerResolver(client)),
			facts.WithMetrics(cfg.Metrics),
		),
	}, nil
}

// snapshotMarkdown renders a snapshot as a markdown table.
func snapshotMarkdown(snap *facts.Snapshot) string {
	var b strings.Builder
	title := snap.EntityName
	if title == "" {
		title = "CIK " + snap.CIK
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "CIK %s, retrieved %s\n\n", snap.CIK, snap.RetrievedAt.Format("2006-01-02 15:04 MST"))

	if snap.Empty() {
		b.WriteString("No financial data is available for this company.\n")
		return b.String()
	}

	b.WriteString("| Metric | Value | Period | Form | Filed |\n")
	b.WriteString("|---|---:|---|---|---|\n")
	for _, f := range snap.Facts {
		filed := ""
		if !f.Filed.IsZero() {
			filed = f.Filed.Format("2006-01-02")
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			f.Metric, facts.FormatValue(f), f.PeriodEnd.Format("2006-01-02"), f.Form, filed)
	}
	if len(snap.Missing) > 0 {
		fmt.Fprintf(&b, "\n_Not reported: %s._\n", strings.Join(snap.Missing, ", "))
	}
	return b.String()
}

func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %s\n", facts.Describe(err))
	fmt.Fprintf(os.Stderr, "  (%v)\n", err)
	return subcommands.ExitFailure
}
