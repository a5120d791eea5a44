package facts

import (
	"errors"
)

// Errors returned by the Fetcher. Callers match them with errors.Is; a metric
// missing from the payload is not an error and is listed in Snapshot.Missing.
var (
	ErrInvalidIdentifier = errors.New("invalid company identifier")
	ErrNotFound          = errors.New("company not found")
	ErrNetwork           = errors.New("SEC request failed")
	ErrMalformedResponse = errors.New("malformed SEC response")
)

// Describe maps a Fetcher error to the message shown to a user.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidIdentifier):
		return "Please enter a numeric CIK (up to 10 digits) or a ticker symbol."
	case errors.Is(err, ErrNotFound):
		return "No financial data is available for this company."
	case errors.Is(err, ErrMalformedResponse):
		return "SEC returned data in an unexpected format. Please try again later."
	case errors.Is(err, ErrNetwork):
		return "Could not reach SEC. Please try again later."
	default:
		return "Something went wrong while fetching financial data."
	}
}
