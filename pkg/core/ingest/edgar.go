// Package ingest provides SEC EDGAR API integration for fetching company facts.
// API Documentation: https://www.sec.gov/edgar/sec-api-documentation
package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	// SEC EDGAR API endpoints
	DefaultDataHost    = "https://data.sec.gov"
	companyFactsPath   = "/api/xbrl/companyfacts/CIK%s.json"
	DefaultTickersURL  = "https://www.sec.gov/files/company_tickers.json"
	DefaultCourtesyGap = 100 * time.Millisecond // SEC allows 10 requests/second

	// Required User-Agent per SEC guidelines
	DefaultUserAgent = "SECFinancialApp/1.0 (contact@example.com)"
)

// StatusError is returned when SEC answers with anything other than 200 OK.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("SEC API returned status %d for %s", e.Code, e.URL)
}

// NotFound reports whether SEC did not recognize the requested resource.
func (e *StatusError) NotFound() bool {
	return e.Code == http.StatusNotFound
}

// =============================================================================
// SEC EDGAR CLIENT
// =============================================================================

// EDGARClient handles SEC EDGAR API requests.
type EDGARClient struct {
	httpClient *http.Client
	userAgent  string
	dataHost   string
	tickersURL string
	pacer      *pacer
}

// Option configures an EDGARClient.
type Option func(*EDGARClient)

// WithHTTPClient replaces the default 30s-timeout client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *EDGARClient) { c.httpClient = hc }
}

// WithUserAgent sets the contact string SEC requires on every request.
func WithUserAgent(ua string) Option {
	return func(c *EDGARClient) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithDataHost points the client at another host serving the XBRL API
// (tests use an httptest server).
func WithDataHost(host string) Option {
	return func(c *EDGARClient) { c.dataHost = strings.TrimRight(host, "/") }
}

// WithTickersURL overrides the location of company_tickers.json.
func WithTickersURL(u string) Option {
	return func(c *EDGARClient) { c.tickersURL = u }
}

// WithCourtesyDelay sets the minimum spacing between two outbound requests.
// Zero disables pacing.
func WithCourtesyDelay(d time.Duration) Option {
	return func(c *EDGARClient) { c.pacer = &pacer{interval: d} }
}

// NewEDGARClient creates a new SEC EDGAR API client.
func NewEDGARClient(opts ...Option) *EDGARClient {
	c := &EDGARClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		userAgent:  DefaultUserAgent,
		dataHost:   DefaultDataHost,
		tickersURL: DefaultTickersURL,
		pacer:      &pacer{interval: DefaultCourtesyGap},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UserAgent returns the User-Agent sent to SEC.
func (c *EDGARClient) UserAgent() string {
	return c.userAgent
}

// FetchCompanyFacts downloads the raw XBRL company-facts document.
//
// CIK must already be zero-padded to 10 digits (e.g., "0000320193" for Apple).
// A 404 from SEC is returned as a *StatusError whose NotFound() is true.
func (c *EDGARClient) FetchCompanyFacts(ctx context.Context, cik string) ([]byte, error) {
	url := c.dataHost + fmt.Sprintf(companyFactsPath, cik)
	return c.get(ctx, url)
}

func (c *EDGARClient) get(ctx context.Context, url string) ([]byte, error) {
	if err := c.pacer.wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// SEC requires User-Agent header
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("SEC API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: url, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}

// pacer spaces outbound requests so a single process stays a polite client.
type pacer struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
}

func (p *pacer) wait(ctx context.Context) error {
	if p == nil || p.interval <= 0 {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if d := time.Until(p.last.Add(p.interval)); d > 0 {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	p.last = time.Now()
	return nil
}
