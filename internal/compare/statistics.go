package compare

import "github.com/shopspring/decimal"

// Statistics is the derived aggregate view of a comparison set. It is
// recomputed on demand and never stored.
type Statistics struct {
	MinPrice       decimal.Decimal `json:"min_price"`
	MaxPrice       decimal.Decimal `json:"max_price"`
	AvgPrice       decimal.Decimal `json:"avg_price"`
	Spread         decimal.Decimal `json:"spread"`
	SavingsPercent int64           `json:"savings_percent"`
}

var oneHundred = decimal.NewFromInt(100)

// ComputeStatistics aggregates min/max/average/spread over a quote set in a
// single left-to-right pass, so float-free decimal summation keeps repeated
// runs byte-identical.
func ComputeStatistics(quotes []QuoteRecord) (Statistics, error) {
	if err := validateSet(quotes); err != nil {
		return Statistics{}, err
	}

	minPrice := quotes[0].Price
	maxPrice := quotes[0].Price
	sum := decimal.Zero
	for _, q := range quotes {
		if q.Price.LessThan(minPrice) {
			minPrice = q.Price
		}
		if q.Price.GreaterThan(maxPrice) {
			maxPrice = q.Price
		}
		sum = sum.Add(q.Price)
	}

	stats := Statistics{
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		AvgPrice: sum.Div(decimal.NewFromInt(int64(len(quotes)))),
		Spread:   maxPrice.Sub(minPrice),
	}
	// Round is half-away-from-zero, which matches half-up for the
	// non-negative percentages produced here.
	if len(quotes) > 1 && maxPrice.IsPositive() {
		stats.SavingsPercent = stats.Spread.Div(maxPrice).Mul(oneHundred).Round(0).IntPart()
	}
	return stats, nil
}
