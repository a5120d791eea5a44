package facts

// appleFacts is a trimmed Apple company-facts payload. Assets has an older
// and a newer 10-Q entry plus an amended duplicate of the FY2023 value.
const appleFacts = `{
  "cik": 320193,
  "entityName": "Apple Inc.",
  "facts": {
    "dei": {
      "EntityCommonStockSharesOutstanding": {
        "label": "Entity Common Stock, Shares Outstanding",
        "units": {"shares": [
          {"end": "2023-10-20", "val": 15550061000, "fy": 2023, "fp": "FY", "form": "10-K", "filed": "2023-11-03"}
        ]}
      }
    },
    "us-gaap": {
      "Revenues": {
        "label": "Revenues",
        "units": {"USD": [
          {"start": "2021-09-26", "end": "2022-09-24", "val": 394328000000, "accn": "0000320193-22-000108", "fy": 2022, "fp": "FY", "form": "10-K", "filed": "2022-10-28"},
          {"start": "2022-09-25", "end": "2023-09-30", "val": 383285000000, "accn": "0000320193-23-000106", "fy": 2023, "fp": "FY", "form": "10-K", "filed": "2023-11-03"},
          {"start": "2020-09-27", "end": "2021-09-25", "val": 365817000000, "accn": "0000320193-21-000105", "fy": 2021, "fp": "FY", "form": "10-K", "filed": "2021-10-29"}
        ]}
      },
      "Assets": {
        "label": "Assets",
        "units": {"USD": [
          {"end": "2023-07-01", "val": 335038000000, "accn": "0000320193-23-000077", "fy": 2023, "fp": "Q3", "form": "10-Q", "filed": "2023-08-04"},
          {"end": "2023-12-30", "val": 353514000000, "accn": "0000320193-24-000006", "fy": 2024, "fp": "Q1", "form": "10-Q", "filed": "2024-02-02"},
          {"end": "2023-09-30", "val": 352583000000, "accn": "0000320193-23-000106", "fy": 2023, "fp": "FY", "form": "10-K", "filed": "2023-11-03"}
        ]}
      },
      "EarningsPerShareDiluted": {
        "label": "Earnings Per Share, Diluted",
        "units": {"USD/shares": [
          {"end": "2023-09-30", "val": 6.13, "fy": 2023, "fp": "FY", "form": "10-K", "filed": "2023-11-03"}
        ]}
      }
    }
  }
}`

// noRevenueFacts carries Total Assets but no revenue concept at all.
const noRevenueFacts = `{
  "cik": 1,
  "entityName": "Holding Co",
  "facts": {
    "us-gaap": {
      "Assets": {
        "label": "Assets",
        "units": {"USD": [
          {"end": "2022-12-31", "val": 1000, "fy": 2022, "fp": "FY", "form": "10-K", "filed": "2023-02-15"}
        ]}
      }
    }
  }
}`

func testMetrics() []Metric {
	return []Metric{
		{Name: "Revenues", Concepts: []string{"Revenues", "RevenueFromContractWithCustomerExcludingAssessedTax"}},
		{Name: "Total Assets", Concepts: []string{"Assets"}},
	}
}
