package facts

import (
	"fmt"
	"strings"
)

// CIKWidth is the fixed number of digits SEC uses in company-facts URLs.
const CIKWidth = 10

// NormalizeCIK turns user input such as "320193", "CIK320193" or
// " 0000320193 " into the 10-digit form SEC expects.
func NormalizeCIK(raw string) (string, error) {
	cik := strings.TrimSpace(raw)
	if len(cik) >= 3 && strings.EqualFold(cik[:3], "CIK") {
		cik = strings.TrimSpace(cik[3:])
	}
	if cik == "" {
		return "", fmt.Errorf("%w: empty identifier", ErrInvalidIdentifier)
	}
	for _, r := range cik {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: %q contains non-digit characters", ErrInvalidIdentifier, raw)
		}
	}

	significant := strings.TrimLeft(cik, "0")
	if significant == "" {
		return "", fmt.Errorf("%w: %q is zero", ErrInvalidIdentifier, raw)
	}
	if len(significant) > CIKWidth {
		return "", fmt.Errorf("%w: %q is longer than %d digits", ErrInvalidIdentifier, raw, CIKWidth)
	}
	return strings.Repeat("0", CIKWidth-len(significant)) + significant, nil
}

// LooksLikeTicker reports whether input should be resolved as a ticker symbol
// rather than parsed as a CIK.
func LooksLikeTicker(input string) bool {
	s := strings.TrimSpace(input)
	if s == "" || len(s) > 10 {
		return false
	}
	if len(s) >= 3 && strings.EqualFold(s[:3], "CIK") {
		return false
	}
	hasLetter := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9', r == '.', r == '-':
		default:
			return false
		}
	}
	return hasLetter
}
