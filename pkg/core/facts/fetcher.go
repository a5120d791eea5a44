package facts

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/chiefgooter/sec-financial-app/pkg/core/ingest"
)

// Source downloads the raw company-facts document for a 10-digit CIK.
// *ingest.EDGARClient satisfies it.
type Source interface {
	FetchCompanyFacts(ctx context.Context, cik string) ([]byte, error)
}

// Resolver maps a ticker symbol to a 10-digit CIK.
// *ingest.TickerResolver satisfies it.
type Resolver interface {
	Resolve(ctx context.Context, ticker string) (string, error)
}

// Fetcher retrieves snapshots. It holds no mutable state and is safe to share.
type Fetcher struct {
	source   Source
	resolver Resolver
	metrics  []Metric
	now      func() time.Time
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithResolver enables ticker input in Lookup.
func WithResolver(r Resolver) FetcherOption {
	return func(f *Fetcher) { f.resolver = r }
}

// WithMetrics replaces the default metric catalog.
func WithMetrics(metrics []Metric) FetcherOption {
	return func(f *Fetcher) {
		if len(metrics) > 0 {
			f.metrics = metrics
		}
	}
}

// WithClock sets the clock used to stamp RetrievedAt.
func WithClock(now func() time.Time) FetcherOption {
	return func(f *Fetcher) { f.now = now }
}

// NewFetcher creates a Fetcher reading from source.
func NewFetcher(source Source, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		source:  source,
		metrics: DefaultMetrics(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Metrics returns the catalog this Fetcher extracts.
func (f *Fetcher) Metrics() []Metric {
	return f.metrics
}

// Fetch normalizes raw into a CIK, performs one request and extracts the
// latest value of every catalog metric. It never retries.
func (f *Fetcher) Fetch(ctx context.Context, raw string) (*Snapshot, error) {
	cik, err := NormalizeCIK(raw)
	if err != nil {
		return nil, err
	}

	payload, err := f.source.FetchCompanyFacts(ctx, cik)
	if err != nil {
		var se *ingest.StatusError
		if errors.As(err, &se) && se.NotFound() {
			return nil, fmt.Errorf("%w: CIK %s", ErrNotFound, cik)
		}
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	snap, err := Extract(payload, cik, f.metrics)
	if err != nil {
		return nil, err
	}
	snap.RetrievedAt = f.now().UTC()

	log.Printf("[Facts] CIK %s (%s): %d facts, %d missing", cik, snap.EntityName, len(snap.Facts), len(snap.Missing))
	return snap, nil
}

// Lookup accepts free-form input: a ticker symbol when a Resolver is
// configured, otherwise (or for numeric input) a CIK.
func (f *Fetcher) Lookup(ctx context.Context, input string) (*Snapshot, error) {
	input = strings.TrimSpace(input)
	if f.resolver == nil || !LooksLikeTicker(input) {
		return f.Fetch(ctx, input)
	}

	cik, err := f.resolver.Resolve(ctx, input)
	if err != nil {
		if errors.Is(err, ingest.ErrTickerNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return f.Fetch(ctx, cik)
}
