package facts

import (
	"errors"
	"testing"
	"time"
)

func TestExtract_LatestValues(t *testing.T) {
	snap, err := Extract([]byte(appleFacts), "0000320193", testMetrics())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if snap.EntityName != "Apple Inc." {
		t.Errorf("EntityName = %q", snap.EntityName)
	}
	if len(snap.Missing) != 0 {
		t.Errorf("expected no missing metrics, got %v", snap.Missing)
	}

	rev, ok := snap.Fact("Revenues")
	if !ok {
		t.Fatal("Revenues missing from snapshot")
	}
	if rev.Value.String() != "383285000000" {
		t.Errorf("Revenues expected 383285000000 (FY2023), got %s", rev.Value)
	}
	if rev.Unit != "USD" || rev.FiscalYear != 2023 || rev.FiscalPeriod != "FY" || rev.Form != "10-K" {
		t.Errorf("Revenues metadata wrong: %+v", rev)
	}
	if rev.Concept != "us-gaap:Revenues" {
		t.Errorf("Revenues concept = %q", rev.Concept)
	}

	assets, ok := snap.Fact("Total Assets")
	if !ok {
		t.Fatal("Total Assets missing from snapshot")
	}
	if assets.Value.String() != "353514000000" {
		t.Errorf("Total Assets expected 353514000000 (Q1 FY2024), got %s", assets.Value)
	}
	if want := time.Date(2023, 12, 30, 0, 0, 0, 0, time.UTC); !assets.PeriodEnd.Equal(want) {
		t.Errorf("Total Assets period end = %v", assets.PeriodEnd)
	}
	if assets.Label != "Assets" {
		t.Errorf("Total Assets label = %q", assets.Label)
	}

	// Catalog order is preserved.
	if snap.Facts[0].Metric != "Revenues" || snap.Facts[1].Metric != "Total Assets" {
		t.Errorf("facts out of catalog order: %s, %s", snap.Facts[0].Metric, snap.Facts[1].Metric)
	}

	t.Log("✅ latest Revenues and Total Assets extracted")
}

func TestExtract_MissingMetricIsOmitted(t *testing.T) {
	snap, err := Extract([]byte(noRevenueFacts), "0000000001", testMetrics())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if _, ok := snap.Fact("Revenues"); ok {
		t.Error("Revenues should be omitted")
	}
	if assets, ok := snap.Fact("Total Assets"); !ok || assets.Value.String() != "1000" {
		t.Errorf("Total Assets expected 1000, got %+v (present=%v)", assets, ok)
	}
	if len(snap.Missing) != 1 || snap.Missing[0] != "Revenues" {
		t.Errorf("Missing = %v", snap.Missing)
	}
}

func TestExtract_FallsBackToNextConcept(t *testing.T) {
	payload := `{"entityName": "X", "facts": {"us-gaap": {
		"RevenueFromContractWithCustomerExcludingAssessedTax": {"label": "Revenue", "units": {"USD": [
			{"end": "2024-06-30", "val": 42, "fy": 2024, "fp": "FY", "form": "10-K", "filed": "2024-08-01"}
		]}}
	}}}`
	snap, err := Extract([]byte(payload), "0000000002", testMetrics())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	rev, ok := snap.Fact("Revenues")
	if !ok {
		t.Fatal("Revenues should come from the fallback concept")
	}
	if rev.Concept != "us-gaap:RevenueFromContractWithCustomerExcludingAssessedTax" || rev.Value.String() != "42" {
		t.Errorf("unexpected fact %+v", rev)
	}
}

func TestExtract_OtherTaxonomyAndUnits(t *testing.T) {
	metrics := []Metric{
		{Name: "Shares Outstanding", Taxonomy: "dei", Concepts: []string{"EntityCommonStockSharesOutstanding"}},
		{Name: "EPS (Diluted)", Concepts: []string{"EarningsPerShareDiluted"}},
	}
	snap, err := Extract([]byte(appleFacts), "0000320193", metrics)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	shares, ok := snap.Fact("Shares Outstanding")
	if !ok || shares.Unit != "shares" || shares.Value.String() != "15550061000" {
		t.Errorf("unexpected shares fact %+v", shares)
	}
	eps, ok := snap.Fact("EPS (Diluted)")
	if !ok || eps.Unit != "USD/shares" || eps.Value.String() != "6.13" {
		t.Errorf("unexpected EPS fact %+v", eps)
	}
}

func TestExtract_TieBreaks(t *testing.T) {
	payload := `{"facts": {"us-gaap": {"Assets": {"units": {
		"USD": [
			{"end": "2023-12-31", "val": 100, "filed": "2024-02-01"},
			{"end": "2023-12-31", "val": 110, "filed": "2024-03-01"},
			{"end": "2023-12-31", "val": 120, "filed": "2024-03-01"}
		],
		"EUR": [
			{"end": "2023-12-31", "val": 90, "filed": "2024-03-01"}
		]
	}}}}}`
	snap, err := Extract([]byte(payload), "0000000003", testMetrics())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	assets, _ := snap.Fact("Total Assets")
	// Later filing wins; equal filings keep the first unit alphabetically (EUR).
	if assets.Unit != "EUR" || assets.Value.String() != "90" {
		t.Errorf("expected EUR 90, got %s %s", assets.Unit, assets.Value)
	}

	payload = `{"facts": {"us-gaap": {"Assets": {"units": {"USD": [
		{"end": "2023-12-31", "val": 100, "filed": "2024-02-01"},
		{"end": "2023-12-31", "val": 110, "filed": "2024-03-01"},
		{"end": "2023-12-31", "val": 120, "filed": "2024-03-01"}
	]}}}}}`
	snap, err = Extract([]byte(payload), "0000000003", testMetrics())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	assets, _ = snap.Fact("Total Assets")
	if assets.Value.String() != "120" {
		t.Errorf("expected the later amendment (120), got %s", assets.Value)
	}
}

func TestExtract_SkipsUnusableEntries(t *testing.T) {
	payload := `{"facts": {"us-gaap": {
		"Assets": {"units": {"USD": [
			{"end": "not-a-date", "val": 999},
			{"end": "2020-01-01", "val": "abc"},
			{"end": "2019-12-31", "val": 5}
		]}},
		"Revenues": {"units": {"USD": [{"end": "bad", "val": 1}]}}
	}}}`
	snap, err := Extract([]byte(payload), "0000000004", testMetrics())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	assets, ok := snap.Fact("Total Assets")
	if !ok || assets.Value.String() != "5" {
		t.Errorf("expected the only valid entry (5), got %+v", assets)
	}
	if _, ok := snap.Fact("Revenues"); ok {
		t.Error("Revenues has no usable entries and should be missing")
	}
}

func TestExtract_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", `<html>rate limited</html>`},
		{"truncated", `{"facts": {"us-gaap": `},
		{"array", `[1, 2, 3]`},
		{"no facts", `{"cik": 1, "entityName": "X"}`},
		{"facts not object", `{"facts": []}`},
		{"trailing html", `{"facts": {"us-gaap": {"Assets": {"units": {"USD": [{"end": "2023-09-30", "val": 5}]}}}}} <html>oops`},
		{"two documents", `{"facts": {}} {"facts": {}}`},
	}
	for _, tc := range tests {
		_, err := Extract([]byte(tc.payload), "0000000005", testMetrics())
		if !errors.Is(err, ErrMalformedResponse) {
			t.Errorf("%s: expected ErrMalformedResponse, got %v", tc.name, err)
		}
	}
}
