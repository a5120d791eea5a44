package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/chiefgooter/sec-financial-app/pkg/core/ingest"
)

type resolveCmd struct{}

func (*resolveCmd) Name() string     { return "resolve" }
func (*resolveCmd) Synopsis() string { return "print the 10-digit CIK of ticker symbols" }
func (*resolveCmd) Usage() string {
	return `facts resolve <ticker>...
`
}

func (*resolveCmd) SetFlags(*flag.FlagSet) {}

func (*resolveCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one ticker is required")
		return subcommands.ExitUsageError
	}
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	resolver := ingest.NewTickerResolver(a.client)
	status := subcommands.ExitSuccess
	for _, ticker := range f.Args() {
		cik, err := resolver.Resolve(ctx, ticker)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", ticker, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("%s\t%s\n", ticker, cik)
	}
	return status
}
