package compare

import "sort"

// ScoredQuote is a quote plus its composite score and 1-based rank position.
type ScoredQuote struct {
	QuoteRecord
	CompositeScore int `json:"composite_score"`
	Rank           int `json:"rank"`
}

// Result is the full comparison output handed back to callers.
type Result struct {
	Statistics Statistics    `json:"statistics"`
	Ranked     []ScoredQuote `json:"ranked"`
	BestDeal   ScoredQuote   `json:"best_deal"`
}

// Engine orders quotes and selects the recommended best deal.
type Engine struct {
	scorer *Scorer
}

func NewEngine(scorer *Scorer) *Engine {
	if scorer == nil {
		scorer, _ = NewScorer(DefaultWeights())
	}
	return &Engine{scorer: scorer}
}

// Rank computes statistics, scores every quote against the set minimum, and
// orders the set: price ascending, ties broken by rating descending, then
// delivery tier (fastest first), then input order.
//
// Best deal is the head of that same ordering. Selection is price-first by
// product requirement ("cheapest acceptable option"); the composite score is
// context shown alongside the ranking, not the selection criterion, so the
// best deal can carry a lower composite score than another quote.
func (e *Engine) Rank(quotes []QuoteRecord) (*Result, error) {
	stats, err := ComputeStatistics(quotes)
	if err != nil {
		return nil, err
	}

	ranked := make([]ScoredQuote, len(quotes))
	for i, q := range quotes {
		ranked[i] = ScoredQuote{
			QuoteRecord:    q,
			CompositeScore: e.scorer.Score(q, stats.MinPrice),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if cmp := a.Price.Cmp(b.Price); cmp != 0 {
			return cmp < 0
		}
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		return a.DeliveryTier.SortOrder() < b.DeliveryTier.SortOrder()
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return &Result{
		Statistics: stats,
		Ranked:     ranked,
		BestDeal:   ranked[0],
	}, nil
}
