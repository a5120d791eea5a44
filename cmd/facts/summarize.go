package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/chiefgooter/sec-financial-app/pkg/core/agent"
	"github.com/chiefgooter/sec-financial-app/pkg/core/analysis"
	"github.com/chiefgooter/sec-financial-app/pkg/core/prompt"
)

type summarizeCmd struct {
	provider string
}

func (*summarizeCmd) Name() string     { return "summarize" }
func (*summarizeCmd) Synopsis() string { return "ask the configured LLM for an analyst summary" }
func (*summarizeCmd) Usage() string {
	return `facts summarize [-provider <name>] <cik|ticker>

  Fetches the latest figures and asks the active LLM provider for a short
  summary with strengths and risks. Requires an API key for the provider.
`
}

func (c *summarizeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.provider, "provider", "", "LLM provider (gemini, gemini-classic, deepseek); defaults to the configured one")
}

func (c *summarizeCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one CIK or ticker is required")
		return subcommands.ExitUsageError
	}
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if a.cfg.PromptsDir != "" {
		if err := prompt.Get().LoadFromDirectory(a.cfg.PromptsDir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using built-in prompts)\n", err)
		}
	}

	mgr := agent.NewManager(a.cfg.LLM)
	if c.provider != "" {
		if err := mgr.SetGlobalProvider(c.provider); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	svc := analysis.NewService(mgr)
	if !svc.Available() {
		fmt.Fprintln(os.Stderr, "Error: no LLM provider is ready; set llm.active_provider and its API key")
		return subcommands.ExitUsageError
	}

	snap, err := a.fetcher.Lookup(ctx, f.Arg(0))
	if err != nil {
		return fail(err)
	}
	report, err := svc.Summarize(ctx, snap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(snapshotMarkdown(snap) + "\n" + report.Markdown)
	return subcommands.ExitSuccess
}
