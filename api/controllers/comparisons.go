package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/velora-beauty/procurement-backend/api/responses"
	"github.com/velora-beauty/procurement-backend/api/validators"
	"github.com/velora-beauty/procurement-backend/internal/compare"
	"github.com/velora-beauty/procurement-backend/pkg/enums"
	pkgerrors "github.com/velora-beauty/procurement-backend/pkg/errors"
	"github.com/velora-beauty/procurement-backend/pkg/logger"
)

// ComparisonRequest is the POST /v1/comparisons body: one product, at least
// one supplier quote.
type ComparisonRequest struct {
	ProductName string       `json:"product_name" validate:"required"`
	Quotes      []QuoteInput `json:"quotes" validate:"required,min=1,dive"`
}

// QuoteInput carries a single supplier offer. Price positivity is enforced by
// the ranking engine so that the rule lives in one place.
type QuoteInput struct {
	Marketplace      string          `json:"marketplace" validate:"required"`
	Supplier         string          `json:"supplier" validate:"required"`
	Price            decimal.Decimal `json:"price"`
	Rating           float64         `json:"rating" validate:"gte=0,lte=5"`
	DeliveryTier     string          `json:"delivery_tier" validate:"required"`
	MinOrderQuantity string          `json:"min_order_quantity"`
}

// CreateComparison ranks a caller-supplied quote set and returns statistics,
// composite scores and the best deal.
func CreateComparison(svc compare.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ComparisonRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		quotes := make([]compare.QuoteRecord, 0, len(req.Quotes))
		for _, q := range req.Quotes {
			tier, err := enums.ParseDeliveryTier(q.DeliveryTier)
			if err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid delivery tier").
						WithDetails(map[string]any{"supplier": q.Supplier, "delivery_tier": q.DeliveryTier}))
				return
			}
			quotes = append(quotes, compare.QuoteRecord{
				ProductName:      req.ProductName,
				Marketplace:      q.Marketplace,
				Supplier:         q.Supplier,
				Price:            q.Price,
				Rating:           q.Rating,
				DeliveryTier:     tier,
				MinOrderQuantity: q.MinOrderQuantity,
			})
		}

		result, err := svc.Compare(r.Context(), quotes)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
