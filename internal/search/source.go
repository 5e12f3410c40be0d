package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	pkgerrors "github.com/velora-beauty/procurement-backend/pkg/errors"
	"github.com/velora-beauty/procurement-backend/pkg/logger"
)

// RawQuote is one marketplace offer as the quote source returns it, before
// the delivery description has been folded into a tier.
type RawQuote struct {
	Marketplace         string          `json:"marketplace"`
	Supplier            string          `json:"supplier"`
	Price               decimal.Decimal `json:"price"`
	Rating              float64         `json:"rating"`
	DeliveryDescription string          `json:"delivery"`
	MinOrderQuantity    string          `json:"min_order_quantity"`
}

// Source is the external quote-source collaborator. An empty slice with a nil
// error is the normal zero-results outcome.
type Source interface {
	Search(ctx context.Context, query string) ([]RawQuote, error)
}

// HTTPSource fans a product query out over the configured marketplace
// endpoints and aggregates their offers. Individual endpoints may fail as
// long as at least one answers; only a full wipeout is surfaced as an error.
type HTTPSource struct {
	endpoints []string
	client    *http.Client
	logg      *logger.Logger
}

// NewHTTPSource builds the aggregating source.
func NewHTTPSource(endpoints []string, client *http.Client, logg *logger.Logger) (*HTTPSource, error) {
	if len(endpoints) == 0 {
		return nil, fmt.Errorf("at least one quote source endpoint required")
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{
		endpoints: endpoints,
		client:    client,
		logg:      logg,
	}, nil
}

// Search queries every endpoint concurrently and merges the offers in
// endpoint order.
func (s *HTTPSource) Search(ctx context.Context, query string) ([]RawQuote, error) {
	perEndpoint := make([][]RawQuote, len(s.endpoints))
	errs := make([]error, len(s.endpoints))

	g, gctx := errgroup.WithContext(ctx)
	for i, endpoint := range s.endpoints {
		i, endpoint := i, endpoint
		g.Go(func() error {
			quotes, err := s.fetch(gctx, endpoint, query)
			if err != nil {
				errs[i] = err
				if s.logg != nil {
					logCtx := s.logg.WithField(gctx, "endpoint", endpoint)
					s.logg.Warn(logCtx, "quote_source.endpoint_failed")
				}
				return nil
			}
			perEndpoint[i] = quotes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []RawQuote
	failed := 0
	for i := range s.endpoints {
		if errs[i] != nil {
			failed++
			continue
		}
		merged = append(merged, perEndpoint[i]...)
	}
	if failed == len(s.endpoints) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, joinErrs(errs), "all quote source endpoints failed")
	}
	return merged, nil
}

func (s *HTTPSource) fetch(ctx context.Context, endpoint, query string) ([]RawQuote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", endpoint, err)
	}
	q := req.URL.Query()
	q.Set("q", query)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("endpoint %s returned status %d", endpoint, resp.StatusCode)
	}

	var payload struct {
		Offers []RawQuote `json:"offers"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding offers from %s: %w", endpoint, err)
	}
	return payload.Offers, nil
}

func joinErrs(errs []error) error {
	var first error
	for _, err := range errs {
		if err != nil {
			if first == nil {
				first = err
			} else {
				first = fmt.Errorf("%w; %v", first, err)
			}
		}
	}
	return first
}
