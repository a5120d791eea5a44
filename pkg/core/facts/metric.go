package facts

// DefaultTaxonomy is the XBRL taxonomy most financial statement concepts live in.
const DefaultTaxonomy = "us-gaap"

// Metric names a figure to surface and the XBRL concepts that may carry it.
// Concepts are tried in order; the first one present in the payload wins.
type Metric struct {
	Name     string   `yaml:"name" json:"name"`
	Taxonomy string   `yaml:"taxonomy" json:"taxonomy,omitempty"`
	Concepts []string `yaml:"concepts" json:"concepts"`
}

func (m Metric) taxonomy() string {
	if m.Taxonomy == "" {
		return DefaultTaxonomy
	}
	return m.Taxonomy
}

// DefaultMetrics is the catalog used when no configuration overrides it.
func DefaultMetrics() []Metric {
	return []Metric{
		{Name: "Revenues", Concepts: []string{
			"Revenues",
			"RevenueFromContractWithCustomerExcludingAssessedTax",
			"SalesRevenueNet",
		}},
		{Name: "Net Income", Concepts: []string{"NetIncomeLoss", "ProfitLoss"}},
		{Name: "Total Assets", Concepts: []string{"Assets"}},
		{Name: "Total Liabilities", Concepts: []string{"Liabilities"}},
		{Name: "Stockholders' Equity", Concepts: []string{
			"StockholdersEquity",
			"StockholdersEquityIncludingPortionAttributableToNoncontrollingInterest",
		}},
		{Name: "Cash and Equivalents", Concepts: []string{
			"CashAndCashEquivalentsAtCarryingValue",
			"CashCashEquivalentsRestrictedCashAndRestrictedCashEquivalents",
		}},
		{Name: "EPS (Diluted)", Concepts: []string{"EarningsPerShareDiluted"}},
	}
}
