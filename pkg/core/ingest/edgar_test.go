package ingest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestFetchCompanyFacts_SendsUserAgent(t *testing.T) {
	var gotUA, gotPath, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		gotPath = r.URL.Path
		w.Write([]byte(`{"cik":320193}`))
	}))
	defer srv.Close()

	client := NewEDGARClient(
		WithDataHost(srv.URL),
		WithUserAgent("Test Suite test@example.com"),
		WithCourtesyDelay(0),
	)

	body, err := client.FetchCompanyFacts(context.Background(), "0000320193")
	if err != nil {
		t.Fatalf("FetchCompanyFacts failed: %v", err)
	}
	if string(body) != `{"cik":320193}` {
		t.Errorf("unexpected body %q", body)
	}
	if gotUA != "Test Suite test@example.com" {
		t.Errorf("User-Agent = %q", gotUA)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q", gotAccept)
	}
	if gotPath != "/api/xbrl/companyfacts/CIK0000320193.json" {
		t.Errorf("path = %q", gotPath)
	}
}

func TestFetchCompanyFacts_StatusErrors(t *testing.T) {
	tests := []struct {
		status   int
		notFound bool
	}{
		{http.StatusNotFound, true},
		{http.StatusForbidden, false},
		{http.StatusInternalServerError, false},
	}

	for _, tc := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		}))

		client := NewEDGARClient(WithDataHost(srv.URL), WithCourtesyDelay(0))
		_, err := client.FetchCompanyFacts(context.Background(), "0000000001")
		srv.Close()

		var se *StatusError
		if !errors.As(err, &se) {
			t.Fatalf("status %d: expected *StatusError, got %v", tc.status, err)
		}
		if se.Code != tc.status {
			t.Errorf("status %d: Code = %d", tc.status, se.Code)
		}
		if se.NotFound() != tc.notFound {
			t.Errorf("status %d: NotFound() = %v", tc.status, se.NotFound())
		}
	}
}

func TestFetchCompanyFacts_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewEDGARClient(WithDataHost(url), WithCourtesyDelay(0))
	_, err := client.FetchCompanyFacts(context.Background(), "0000000001")
	if err == nil {
		t.Fatal("expected error from closed server")
	}
	var se *StatusError
	if errors.As(err, &se) {
		t.Errorf("transport failure should not be a StatusError: %v", err)
	}
}

func TestPacer_SpacesRequests(t *testing.T) {
	p := &pacer{interval: 30 * time.Millisecond}
	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := p.wait(context.Background()); err != nil {
			t.Fatalf("wait: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed < 60*time.Millisecond {
		t.Errorf("three paced calls took %v, expected at least 60ms", elapsed)
	}
}

func TestPacer_HonoursContext(t *testing.T) {
	p := &pacer{interval: time.Hour}
	if err := p.wait(context.Background()); err != nil {
		t.Fatalf("first wait: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestTickerResolver_LoadsOnce(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`{
			"0": {"cik_str": 320193, "ticker": "AAPL", "title": "Apple Inc."},
			"1": {"cik_str": 789019, "ticker": "MSFT", "title": "MICROSOFT CORP"}
		}`))
	}))
	defer srv.Close()

	client := NewEDGARClient(WithTickersURL(srv.URL), WithCourtesyDelay(0))
	resolver := NewTickerResolver(client)

	cik, err := resolver.Resolve(context.Background(), " msft ")
	if err != nil {
		t.Fatalf("Resolve MSFT: %v", err)
	}
	if cik != "0000789019" {
		t.Errorf("MSFT CIK = %q", cik)
	}

	cik, err = resolver.Resolve(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("Resolve AAPL: %v", err)
	}
	if cik != "0000320193" {
		t.Errorf("AAPL CIK = %q", cik)
	}

	if _, err := resolver.Resolve(context.Background(), "ZZZZ"); !errors.Is(err, ErrTickerNotFound) {
		t.Errorf("expected ErrTickerNotFound, got %v", err)
	}

	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Errorf("ticker file fetched %d times, expected 1", n)
	}
}
