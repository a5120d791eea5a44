package facts

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var (
	thousand = decimal.NewFromInt(1_000)
	scales   = []struct {
		suffix string
		factor decimal.Decimal
	}{
		{"T", decimal.New(1, 12)},
		{"B", decimal.New(1, 9)},
		{"M", decimal.New(1, 6)},
		{"K", decimal.New(1, 3)},
	}
	countFormatter = money.NewFormatter(0, ".", ",", "", "1")
)

// FormatValue renders the full value in its unit: "$394,328,000,000.00" for
// USD, "$6.125" for USD/shares, "15,550,061,000" for shares. Per-share
// amounts keep every reported digit.
func FormatValue(f Fact) string {
	code, perShare := currencyOf(f.Unit)
	if perShare {
		grapheme := money.GetCurrency(code).Grapheme
		if f.Value.IsNegative() {
			return "-" + grapheme + f.Value.Neg().String()
		}
		return grapheme + f.Value.String()
	}
	if code != "" {
		minor := decimal.New(1, int32(money.GetCurrency(code).Fraction))
		return money.New(f.Value.Mul(minor).Round(0).IntPart(), code).Display()
	}
	if strings.EqualFold(f.Unit, "shares") && f.Value.Equal(f.Value.Truncate(0)) {
		return countFormatter.Format(f.Value.IntPart())
	}
	return f.Value.String()
}

// FormatCompact renders a short form for tables: "$394.33B", "$6.13", "15.55B".
func FormatCompact(f Fact) string {
	code, perShare := currencyOf(f.Unit)
	prefix := ""
	if code != "" {
		if c := money.GetCurrency(code); c != nil {
			prefix = c.Grapheme
		}
	}

	v := f.Value
	sign := ""
	if v.IsNegative() {
		sign = "-"
		v = v.Neg()
	}

	if !perShare && v.GreaterThanOrEqual(thousand) {
		for _, s := range scales {
			if v.GreaterThanOrEqual(s.factor) {
				return sign + prefix + v.Div(s.factor).StringFixed(2) + s.suffix
			}
		}
	}
	return sign + prefix + v.StringFixed(2)
}

// currencyOf splits units such as "USD" or "USD/shares" into an ISO code known
// to go-money and whether the value is a per-share amount.
func currencyOf(unit string) (code string, perShare bool) {
	base, denom, hasDenom := strings.Cut(unit, "/")
	if hasDenom && !strings.EqualFold(denom, "shares") {
		return "", false
	}
	if money.GetCurrency(base) == nil {
		return "", false
	}
	return base, hasDenom
}
