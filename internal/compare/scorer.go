package compare

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/velora-beauty/procurement-backend/pkg/enums"
)

// Default composite-score weights. Named so a tuning pass can change them
// without touching the formula.
const (
	DefaultPriceWeight    = 0.4
	DefaultRatingWeight   = 0.3
	DefaultDeliveryWeight = 0.3
)

// Delivery tier sub-scores on the 0-100 scale.
const (
	tierScoreFastest  = 100
	tierScoreFast     = 90
	tierScoreStandard = 80
)

// Weights defines the relative importance of each scoring factor.
type Weights struct {
	Price    float64
	Rating   float64
	Delivery float64
}

// DefaultWeights returns the stock scoring weights.
func DefaultWeights() Weights {
	return Weights{
		Price:    DefaultPriceWeight,
		Rating:   DefaultRatingWeight,
		Delivery: DefaultDeliveryWeight,
	}
}

const weightSumTolerance = 1e-9

// Scorer computes the 0-100 composite score for a single quote. It knows
// nothing about the rest of the set beyond the supplied minimum price, which
// keeps it testable in isolation.
type Scorer struct {
	weights Weights
}

// NewScorer builds a scorer, rejecting weight sets that do not sum to 1.0.
func NewScorer(weights Weights) (*Scorer, error) {
	sum := weights.Price + weights.Rating + weights.Delivery
	if math.Abs(sum-1.0) > weightSumTolerance {
		return nil, fmt.Errorf("scoring weights must sum to 1.0, got %v", sum)
	}
	return &Scorer{weights: weights}, nil
}

// Score blends relative price, rating, and delivery tier into one integer.
// The price component is inverse-proportional: the cheapest quote in the set
// earns the full price share; a quote at twice the minimum earns half of it.
func (s *Scorer) Score(quote QuoteRecord, minPriceInSet decimal.Decimal) int {
	priceRatio := minPriceInSet.Div(quote.Price).InexactFloat64()
	priceScore := priceRatio * 100 * s.weights.Price
	ratingScore := quote.Rating / ratingMax * 100 * s.weights.Rating
	deliveryScore := deliveryTierValue(quote.DeliveryTier) * s.weights.Delivery

	// The formula cannot exceed 100 while the weights sum to 1.0; the clamp
	// guards future weight edits.
	return clampScore(roundHalfUp(priceScore + ratingScore + deliveryScore))
}

func deliveryTierValue(tier enums.DeliveryTier) float64 {
	switch tier {
	case enums.DeliveryTierFastest:
		return tierScoreFastest
	case enums.DeliveryTierFast:
		return tierScoreFast
	default:
		return tierScoreStandard
	}
}

func roundHalfUp(value float64) int {
	return int(math.Floor(value + 0.5))
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
