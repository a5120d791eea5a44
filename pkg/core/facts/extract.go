package facts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

/*
Shape of https://data.sec.gov/api/xbrl/companyfacts/CIK0000320193.json:

	{
	  "cik": 320193,
	  "entityName": "Apple Inc.",
	  "facts": {
	    "us-gaap": {
	      "Assets": {
	        "label": "Assets",
	        "units": {
	          "USD": [
	            {"end": "2023-09-30", "val": 352583000000, "accn": "0000320193-23-000106",
	             "fy": 2023, "fp": "FY", "form": "10-K", "filed": "2023-11-03"}
	          ]
	        }
	      }
	    }
	  }
	}
*/

// Extract builds a Snapshot for cik from a raw company-facts payload.
// RetrievedAt is left for the caller to set.
func Extract(payload []byte, cik string, metrics []Metric) (*Snapshot, error) {
	doc, err := decode(payload)
	if err != nil {
		return nil, err
	}

	// Numbers stay json.Number, so values up to the trillions keep every digit.
	if _, err := objectAt(doc, "$.facts"); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	snap := &Snapshot{CIK: cik, Facts: []Fact{}}
	if name, ok := doc["entityName"].(string); ok {
		snap.EntityName = name
	}

	for _, m := range metrics {
		fact, ok := latestFact(doc, m)
		if !ok {
			snap.Missing = append(snap.Missing, m.Name)
			continue
		}
		snap.Facts = append(snap.Facts, fact)
	}
	return snap, nil
}

func decode(payload []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after JSON document", ErrMalformedResponse)
	}
	doc, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top-level value is %T, not an object", ErrMalformedResponse, v)
	}
	return doc, nil
}

func objectAt(doc any, path string) (map[string]any, error) {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s is %T, not an object", path, v)
	}
	return obj, nil
}

// latestFact walks the metric's candidate concepts and returns the most
// recent entry of the first concept that has one.
func latestFact(doc map[string]any, m Metric) (Fact, bool) {
	for _, concept := range m.Concepts {
		node, err := objectAt(doc, fmt.Sprintf("$.facts[%q][%q]", m.taxonomy(), concept))
		if err != nil {
			continue
		}
		units, ok := node["units"].(map[string]any)
		if !ok {
			continue
		}
		best, ok := latestEntry(units)
		if !ok {
			continue
		}

		label, _ := node["label"].(string)
		best.Metric = m.Name
		best.Concept = m.taxonomy() + ":" + concept
		best.Label = label
		return best, true
	}
	return Fact{}, false
}

// latestEntry picks the entry with the greatest period end across all units.
// Ties go to the later filing, then to the alphabetically first unit, then to
// the later position in the list (amendments are appended).
func latestEntry(units map[string]any) (Fact, bool) {
	names := make([]string, 0, len(units))
	for name := range units {
		names = append(names, name)
	}
	sort.Strings(names)

	var best Fact
	found := false
	for _, unit := range names {
		entries, ok := units[unit].([]any)
		if !ok {
			continue
		}
		for _, raw := range entries {
			entry, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			f, ok := parseEntry(entry, unit)
			if !ok {
				continue
			}
			if !found || newer(f, best) {
				best = f
				found = true
			}
		}
	}
	return best, found
}

func newer(a, b Fact) bool {
	if !a.PeriodEnd.Equal(b.PeriodEnd) {
		return a.PeriodEnd.After(b.PeriodEnd)
	}
	if !a.Filed.Equal(b.Filed) {
		return a.Filed.After(b.Filed)
	}
	// Same unit: the later entry wins. Different unit: keep the earlier unit.
	return a.Unit == b.Unit
}

func parseEntry(entry map[string]any, unit string) (Fact, bool) {
	endStr, _ := entry["end"].(string)
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return Fact{}, false
	}

	value, ok := toDecimal(entry["val"])
	if !ok {
		return Fact{}, false
	}

	f := Fact{
		Value:     value,
		Unit:      unit,
		PeriodEnd: end,
	}
	if fy, ok := entry["fy"].(json.Number); ok {
		if n, err := fy.Int64(); err == nil {
			f.FiscalYear = int(n)
		}
	}
	f.FiscalPeriod, _ = entry["fp"].(string)
	f.Form, _ = entry["form"].(string)
	f.Accession, _ = entry["accn"].(string)
	if filed, ok := entry["filed"].(string); ok {
		f.Filed, _ = time.Parse(dateLayout, filed)
	}
	return f, true
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		return d, err == nil
	case float64:
		return decimal.NewFromFloat(n), true
	case string:
		d, err := decimal.NewFromString(n)
		return d, err == nil
	default:
		return decimal.Decimal{}, false
	}
}
