package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/velora-beauty/procurement-backend/pkg/enums"
	pkgerrors "github.com/velora-beauty/procurement-backend/pkg/errors"
)

// QuoteRecord is one marketplace/supplier offer for one product. Quotes are
// volatile: prices change between queries, so records are never persisted and
// every comparison recomputes from the list supplied at call time.
type QuoteRecord struct {
	ProductName      string             `json:"product_name"`
	Marketplace      string             `json:"marketplace"`
	Supplier         string             `json:"supplier"`
	Price            decimal.Decimal    `json:"price"`
	Rating           float64            `json:"rating"`
	DeliveryTier     enums.DeliveryTier `json:"delivery_tier"`
	MinOrderQuantity string             `json:"min_order_quantity,omitempty"`
}

const ratingMax = 5.0

// Validate checks the per-quote field constraints.
func (q QuoteRecord) Validate() error {
	if strings.TrimSpace(q.ProductName) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "quote product_name is required")
	}
	if strings.TrimSpace(q.Marketplace) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "quote marketplace is required")
	}
	if strings.TrimSpace(q.Supplier) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "quote supplier is required")
	}
	if !q.Price.IsPositive() {
		return pkgerrors.New(pkgerrors.CodeValidation, "quote price must be greater than zero").
			WithDetails(map[string]any{"supplier": q.Supplier, "price": q.Price.String()})
	}
	if q.Rating < 0 || q.Rating > ratingMax {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("quote rating must be within [0,%v]", ratingMax)).
			WithDetails(map[string]any{"supplier": q.Supplier, "rating": q.Rating})
	}
	if !q.DeliveryTier.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "quote delivery_tier is unknown").
			WithDetails(map[string]any{"supplier": q.Supplier, "delivery_tier": q.DeliveryTier.String()})
	}
	return nil
}

// validateSet enforces the comparison-set invariant: non-empty, every quote
// valid, and a single shared product name.
func validateSet(quotes []QuoteRecord) error {
	if len(quotes) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "comparison set must not be empty")
	}
	product := quotes[0].ProductName
	for _, q := range quotes {
		if err := q.Validate(); err != nil {
			return err
		}
		if q.ProductName != product {
			return pkgerrors.New(pkgerrors.CodeValidation, "comparison set mixes product names").
				WithDetails(map[string]any{"expected": product, "got": q.ProductName})
		}
	}
	return nil
}
