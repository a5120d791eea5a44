package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
)

// ErrTickerNotFound is returned when a symbol is absent from SEC's mapping file.
var ErrTickerNotFound = errors.New("ticker not found in SEC database")

// TickerResolver maps ticker symbols to 10-digit CIKs using SEC's
// company_tickers.json. The mapping is loaded once, on first use.
type TickerResolver struct {
	client *EDGARClient

	mu    sync.Mutex
	cache map[string]string // Ticker -> CIK (padded)
}

// NewTickerResolver creates a resolver backed by client.
func NewTickerResolver(client *EDGARClient) *TickerResolver {
	return &TickerResolver{client: client}
}

// Resolve returns the zero-padded CIK for ticker.
func (r *TickerResolver) Resolve(ctx context.Context, ticker string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(ticker))

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cache == nil {
		cache, err := r.load(ctx)
		if err != nil {
			return "", err
		}
		r.cache = cache
	}

	if cik, ok := r.cache[normalized]; ok {
		return cik, nil
	}
	return "", fmt.Errorf("%w: %s", ErrTickerNotFound, normalized)
}

// load fetches the full ticker list from SEC.
// Format: {"0": {"cik_str": 320193, "ticker": "AAPL", "title": "Apple Inc."}, ...}
func (r *TickerResolver) load(ctx context.Context) (map[string]string, error) {
	body, err := r.client.get(ctx, r.client.tickersURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ticker mapping: %w", err)
	}

	var mapping map[string]struct {
		CIK    int64  `json:"cik_str"`
		Ticker string `json:"ticker"`
		Title  string `json:"title"`
	}
	if err := json.Unmarshal(body, &mapping); err != nil {
		return nil, fmt.Errorf("failed to parse ticker mapping: %w", err)
	}

	cache := make(map[string]string, len(mapping))
	for _, entry := range mapping {
		cache[strings.ToUpper(entry.Ticker)] = fmt.Sprintf("%010d", entry.CIK)
	}
	log.Printf("[Ingest] Loaded %d tickers from SEC", len(cache))
	return cache, nil
}
