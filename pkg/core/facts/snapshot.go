// Package facts turns SEC XBRL company-facts documents into snapshots of the
// latest reported value for a catalog of metrics.
package facts

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fact is the latest reported value of one metric.
type Fact struct {
	Metric       string          `json:"metric"`
	Concept      string          `json:"concept"` // e.g. "us-gaap:Assets"
	Label        string          `json:"label,omitempty"`
	Value        decimal.Decimal `json:"value"`
	Unit         string          `json:"unit"` // "USD", "USD/shares", "shares"
	PeriodEnd    time.Time       `json:"period_end"`
	FiscalYear   int             `json:"fiscal_year,omitempty"`
	FiscalPeriod string          `json:"fiscal_period,omitempty"` // "FY", "Q1".."Q3"
	Form         string          `json:"form,omitempty"`
	Filed        time.Time       `json:"filed,omitzero"`
	Accession    string          `json:"accession,omitempty"`
}

// Snapshot is the set of facts retrieved for one company at one point in time.
// Facts keep the catalog order; metrics absent upstream are listed in Missing.
type Snapshot struct {
	CIK         string    `json:"cik"`
	EntityName  string    `json:"entity_name,omitempty"`
	Facts       []Fact    `json:"facts"`
	Missing     []string  `json:"missing,omitempty"`
	RetrievedAt time.Time `json:"retrieved_at"`
}

// Fact returns the fact for the named metric, if present.
func (s *Snapshot) Fact(metric string) (Fact, bool) {
	for _, f := range s.Facts {
		if f.Metric == metric {
			return f, true
		}
	}
	return Fact{}, false
}

// Empty reports whether no requested metric was found.
func (s *Snapshot) Empty() bool {
	return len(s.Facts) == 0
}
