package search

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/velora-beauty/procurement-backend/pkg/enums"
	pkgerrors "github.com/velora-beauty/procurement-backend/pkg/errors"
)

// scriptedSource lets tests control when each query resolves.
type scriptedSource struct {
	mu      sync.Mutex
	started map[string]chan struct{}
	release map[string]chan struct{}
	results map[string][]RawQuote
	errs    map[string]error
}

func newScriptedSource() *scriptedSource {
	return &scriptedSource{
		started: map[string]chan struct{}{},
		release: map[string]chan struct{}{},
		results: map[string][]RawQuote{},
		errs:    map[string]error{},
	}
}

func (s *scriptedSource) expect(query string, quotes []RawQuote, err error) (started, release chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	started = make(chan struct{})
	release = make(chan struct{})
	s.started[query] = started
	s.release[query] = release
	s.results[query] = quotes
	s.errs[query] = err
	return started, release
}

func (s *scriptedSource) Search(_ context.Context, query string) ([]RawQuote, error) {
	s.mu.Lock()
	started := s.started[query]
	release := s.release[query]
	quotes := s.results[query]
	err := s.errs[query]
	s.mu.Unlock()

	if started != nil {
		close(started)
	}
	if release != nil {
		<-release
	}
	return quotes, err
}

type stubSource struct {
	quotes []RawQuote
	err    error
}

func (s stubSource) Search(context.Context, string) ([]RawQuote, error) {
	return s.quotes, s.err
}

func rawSerumQuote(supplier string) RawQuote {
	return RawQuote{
		Marketplace:         "1688",
		Supplier:            supplier,
		Price:               decimal.NewFromInt(45),
		Rating:              4.8,
		DeliveryDescription: "1-2 days",
		MinOrderQuantity:    "10 units",
	}
}

func newTestCoordinator(t *testing.T, source Source) *Coordinator {
	t.Helper()
	mapper, err := NewTierMapper(nil)
	if err != nil {
		t.Fatalf("building mapper: %v", err)
	}
	coord, err := NewCoordinator(source, mapper, nil, nil)
	if err != nil {
		t.Fatalf("building coordinator: %v", err)
	}
	return coord
}

func TestQueryRejectsBlankInput(t *testing.T) {
	coord := newTestCoordinator(t, stubSource{})

	for _, query := range []string{"", "   ", "\t\n"} {
		_, err := coord.Query(context.Background(), query)
		if err == nil {
			t.Fatalf("expected validation error for query %q", query)
		}
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation code, got %v", err)
		}
	}

	if snap := coord.Current(); snap.Seq != 0 || snap.State != enums.QueryStateIdle {
		t.Fatalf("blank queries must not touch coordinator state, got %+v", snap)
	}
}

func TestQueryFoundOutcome(t *testing.T) {
	coord := newTestCoordinator(t, stubSource{quotes: []RawQuote{rawSerumQuote("SupplierX")}})

	result, err := coord.Query(context.Background(), "  Face Serum 30ML  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != enums.SearchOutcomeFound {
		t.Fatalf("expected found, got %s", result.Outcome)
	}
	if result.Query != "Face Serum 30ML" {
		t.Fatalf("expected trimmed query, got %q", result.Query)
	}
	if len(result.Quotes) != 1 {
		t.Fatalf("expected 1 quote, got %d", len(result.Quotes))
	}

	quote := result.Quotes[0]
	if quote.ProductName != "Face Serum 30ML" {
		t.Fatalf("quote should carry the query as product name, got %q", quote.ProductName)
	}
	if quote.DeliveryTier != enums.DeliveryTierFast {
		t.Fatalf("expected '1-2 days' mapped to fast, got %s", quote.DeliveryTier)
	}
	if quote.MinOrderQuantity != "10 units" {
		t.Fatalf("min order quantity must pass through unchanged, got %q", quote.MinOrderQuantity)
	}

	snap := coord.Current()
	if snap.State != enums.QueryStateResolved {
		t.Fatalf("expected resolved state, got %s", snap.State)
	}
	if snap.Last == nil || snap.Last.Outcome != enums.SearchOutcomeFound {
		t.Fatalf("snapshot should hold the committed result, got %+v", snap.Last)
	}
}

func TestQueryNotFoundIsDistinctFromError(t *testing.T) {
	t.Run("notFound", func(t *testing.T) {
		coord := newTestCoordinator(t, stubSource{quotes: nil})
		result, err := coord.Query(context.Background(), "Ghost Product")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Outcome != enums.SearchOutcomeNotFound {
			t.Fatalf("expected not_found, got %s", result.Outcome)
		}
		if result.Reason != "" {
			t.Fatalf("not_found must not carry a failure reason, got %q", result.Reason)
		}
		if snap := coord.Current(); snap.State != enums.QueryStateResolved {
			t.Fatalf("not_found resolves normally, got state %s", snap.State)
		}
	})

	t.Run("transportError", func(t *testing.T) {
		coord := newTestCoordinator(t, stubSource{err: errors.New("socket closed")})
		result, err := coord.Query(context.Background(), "Face Serum 30ML")
		if err != nil {
			t.Fatalf("transport failures surface in the outcome, not as call errors: %v", err)
		}
		if result.Outcome != enums.SearchOutcomeError {
			t.Fatalf("expected error outcome, got %s", result.Outcome)
		}
		if result.Reason == "" {
			t.Fatal("error outcome must carry a reason")
		}
		if snap := coord.Current(); snap.State != enums.QueryStateFailed {
			t.Fatalf("expected failed state, got %s", snap.State)
		}
	})
}

func TestQueryDropsInvalidRawQuotes(t *testing.T) {
	badPrice := rawSerumQuote("BadSupplier")
	badPrice.Price = decimal.Zero
	coord := newTestCoordinator(t, stubSource{quotes: []RawQuote{badPrice, rawSerumQuote("GoodSupplier")}})

	result, err := coord.Query(context.Background(), "Face Serum 30ML")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Quotes) != 1 || result.Quotes[0].Supplier != "GoodSupplier" {
		t.Fatalf("invalid rows must be dropped, got %+v", result.Quotes)
	}
}

func TestQueryAllRowsInvalidIsNotFound(t *testing.T) {
	bad := rawSerumQuote("BadSupplier")
	bad.Rating = 9
	coord := newTestCoordinator(t, stubSource{quotes: []RawQuote{bad}})

	result, err := coord.Query(context.Background(), "Face Serum 30ML")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != enums.SearchOutcomeNotFound {
		t.Fatalf("expected not_found when every row is dropped, got %s", result.Outcome)
	}
}

// The one true concurrency hazard: query A issued first but resolving last
// must not overwrite the state committed by the newer query B.
func TestStaleResponseIsDiscarded(t *testing.T) {
	source := newScriptedSource()
	startedA, releaseA := source.expect("Product A", []RawQuote{rawSerumQuote("SupplierA")}, nil)
	startedB, releaseB := source.expect("Product B", []RawQuote{rawSerumQuote("SupplierB")}, nil)

	coord := newTestCoordinator(t, source)

	resultA := make(chan *Result, 1)
	go func() {
		res, err := coord.Query(context.Background(), "Product A")
		if err != nil {
			t.Errorf("query A failed: %v", err)
		}
		resultA <- res
	}()
	<-startedA // A holds the latest sequence number until B is issued

	resultB := make(chan *Result, 1)
	go func() {
		res, err := coord.Query(context.Background(), "Product B")
		if err != nil {
			t.Errorf("query B failed: %v", err)
		}
		resultB <- res
	}()
	<-startedB

	// B resolves first and commits; A resolves afterwards and must be dropped.
	close(releaseB)
	b := waitForResult(t, resultB)
	if b.Outcome != enums.SearchOutcomeFound {
		t.Fatalf("query B expected found, got %s", b.Outcome)
	}

	close(releaseA)
	a := waitForResult(t, resultA)
	if a.Quotes[0].Supplier != "SupplierA" {
		t.Fatalf("query A's own return value should still be A's data, got %+v", a.Quotes)
	}

	snap := coord.Current()
	if snap.Last == nil || snap.Last.Query != "Product B" {
		t.Fatalf("visible state must be query B's result, got %+v", snap.Last)
	}
	if snap.Last.Quotes[0].Supplier != "SupplierB" {
		t.Fatalf("stale response overwrote newer state: %+v", snap.Last.Quotes)
	}
	if snap.State != enums.QueryStateResolved {
		t.Fatalf("expected resolved state, got %s", snap.State)
	}
}

func TestSequenceNumbersIncreaseMonotonically(t *testing.T) {
	coord := newTestCoordinator(t, stubSource{quotes: []RawQuote{rawSerumQuote("SupplierX")}})

	for i := 1; i <= 3; i++ {
		if _, err := coord.Query(context.Background(), "Face Serum 30ML"); err != nil {
			t.Fatalf("query %d failed: %v", i, err)
		}
		if snap := coord.Current(); snap.Seq != uint64(i) {
			t.Fatalf("expected seq %d, got %d", i, snap.Seq)
		}
	}
}

func waitForResult(t *testing.T, ch chan *Result) *Result {
	t.Helper()
	select {
	case res := <-ch:
		return res
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for query result")
		return nil
	}
}
