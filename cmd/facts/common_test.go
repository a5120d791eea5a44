package main

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chiefgooter/sec-financial-app/pkg/core/facts"
)

func TestSnapshotMarkdown(t *testing.T) {
	snap := &facts.Snapshot{
		CIK:        "0000320193",
		EntityName: "Apple Inc.",
		Facts: []facts.Fact{{
			Metric:    "Revenues",
			Unit:      "USD",
			Value:     decimal.RequireFromString("383285000000"),
			PeriodEnd: time.Date(2023, 9, 30, 0, 0, 0, 0, time.UTC),
			Form:      "10-K",
			Filed:     time.Date(2023, 11, 3, 0, 0, 0, 0, time.UTC),
		}},
		Missing:     []string{"Net Income"},
		RetrievedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	md := snapshotMarkdown(snap)
	for _, want := range []string{
		"# Apple Inc.",
		"| Revenues | $383,285,000,000.00 | 2023-09-30 | 10-K | 2023-11-03 |",
		"_Not reported: Net Income._",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}

	empty := snapshotMarkdown(&facts.Snapshot{CIK: "0000000005"})
	if !strings.Contains(empty, "# CIK 0000000005") || strings.Contains(empty, "| Metric |") {
		t.Errorf("unexpected empty rendering:\n%s", empty)
	}
}
