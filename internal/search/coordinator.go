package search

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/velora-beauty/procurement-backend/internal/compare"
	"github.com/velora-beauty/procurement-backend/pkg/enums"
	pkgerrors "github.com/velora-beauty/procurement-backend/pkg/errors"
	"github.com/velora-beauty/procurement-backend/pkg/logger"
	"github.com/velora-beauty/procurement-backend/pkg/metrics"
)

// Result is the tagged outcome of one quote search. NotFound means the
// collaborator answered successfully with zero offers; only Error carries a
// failure reason.
type Result struct {
	Outcome enums.SearchOutcome   `json:"outcome"`
	Query   string                `json:"query"`
	Quotes  []compare.QuoteRecord `json:"quotes,omitempty"`
	Reason  string                `json:"reason,omitempty"`
}

// Snapshot is the coordinator's externally visible state: where the state
// machine currently sits plus the last committed result.
type Snapshot struct {
	State enums.QueryState `json:"state"`
	Seq   uint64           `json:"seq"`
	Last  *Result          `json:"last,omitempty"`
}

// Coordinator serializes quote searches so that only the most recent request
// can publish its result. Each call carries a monotonically increasing
// sequence number; a response is committed only when its sequence still
// equals the latest issued one, otherwise it is silently dropped. This
// last-writer-wins gate replaces network cancellation entirely.
type Coordinator struct {
	source  Source
	mapper  *TierMapper
	logg    *logger.Logger
	metrics *metrics.SearchMetrics

	mu    sync.Mutex
	seq   uint64
	state enums.QueryState
	last  *Result
}

// NewCoordinator constructs a search coordinator.
func NewCoordinator(source Source, mapper *TierMapper, logg *logger.Logger, m *metrics.SearchMetrics) (*Coordinator, error) {
	if source == nil {
		return nil, fmt.Errorf("quote source required")
	}
	if mapper == nil {
		return nil, fmt.Errorf("tier mapper required")
	}
	return &Coordinator{
		source:  source,
		mapper:  mapper,
		logg:    logg,
		metrics: m,
		state:   enums.QueryStateIdle,
	}, nil
}

// Query resolves quotes for a free-text product name. A blank query fails
// synchronously without contacting the collaborator. The returned Result is
// always the outcome of THIS call; coordinator state only ever reflects the
// newest in-flight query.
func (c *Coordinator) Query(ctx context.Context, productQuery string) (*Result, error) {
	query := strings.TrimSpace(productQuery)
	if query == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product query must not be blank")
	}

	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.state = enums.QueryStateQuerying
	c.mu.Unlock()

	if c.logg != nil {
		ctx = c.logg.WithQuerySeq(c.logg.WithProduct(ctx, query), seq)
	}

	start := time.Now()
	raw, err := c.source.Search(ctx, query)
	result := c.buildResult(ctx, query, raw, err)

	if c.commit(seq, result) {
		c.metrics.ObserveSearch(result.Outcome.String(), time.Since(start))
		if c.logg != nil {
			logCtx := c.logg.WithField(ctx, "outcome", result.Outcome.String())
			c.logg.Info(logCtx, "search.resolved")
		}
	} else {
		c.metrics.IncStaleDropped()
		if c.logg != nil {
			c.logg.Debug(ctx, "search.stale_response_dropped")
		}
	}
	return result, nil
}

// Current returns the latest committed snapshot for the query UX.
func (c *Coordinator) Current() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		State: c.state,
		Seq:   c.seq,
		Last:  c.last,
	}
}

func (c *Coordinator) buildResult(ctx context.Context, query string, raw []RawQuote, err error) *Result {
	if err != nil {
		return &Result{
			Outcome: enums.SearchOutcomeError,
			Query:   query,
			Reason:  err.Error(),
		}
	}

	quotes := make([]compare.QuoteRecord, 0, len(raw))
	for _, r := range raw {
		record := compare.QuoteRecord{
			ProductName:      query,
			Marketplace:      r.Marketplace,
			Supplier:         r.Supplier,
			Price:            r.Price,
			Rating:           r.Rating,
			DeliveryTier:     c.mapper.Map(r.DeliveryDescription),
			MinOrderQuantity: r.MinOrderQuantity,
		}
		// Malformed marketplace rows are dropped rather than failing the
		// whole search.
		if vErr := record.Validate(); vErr != nil {
			if c.logg != nil {
				logCtx := c.logg.WithFields(ctx, map[string]any{
					"marketplace": r.Marketplace,
					"supplier":    r.Supplier,
				})
				c.logg.Warn(logCtx, "search.quote_dropped_invalid")
			}
			continue
		}
		quotes = append(quotes, record)
	}

	if len(quotes) == 0 {
		return &Result{
			Outcome: enums.SearchOutcomeNotFound,
			Query:   query,
		}
	}
	return &Result{
		Outcome: enums.SearchOutcomeFound,
		Query:   query,
		Quotes:  quotes,
	}
}

// commit applies the last-writer-wins gate. It reports whether the result
// became the coordinator's visible state.
func (c *Coordinator) commit(seq uint64, result *Result) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return false
	}
	if result.Outcome == enums.SearchOutcomeError {
		c.state = enums.QueryStateFailed
	} else {
		c.state = enums.QueryStateResolved
	}
	c.last = result
	return true
}
