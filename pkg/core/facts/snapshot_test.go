package facts

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFact_JSONOmitsUnknownFiledDate(t *testing.T) {
	f := Fact{
		Metric:    "Total Assets",
		Concept:   "us-gaap:Assets",
		Value:     decimal.NewFromInt(5),
		Unit:      "USD",
		PeriodEnd: time.Date(2023, 9, 30, 0, 0, 0, 0, time.UTC),
	}

	out, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(out), `"filed"`) {
		t.Errorf("zero filed date should be omitted: %s", out)
	}

	f.Filed = time.Date(2023, 11, 3, 0, 0, 0, 0, time.UTC)
	out, err = json.Marshal(f)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(out), `"filed":"2023-11-03T00:00:00Z"`) {
		t.Errorf("filed date missing: %s", out)
	}
}
