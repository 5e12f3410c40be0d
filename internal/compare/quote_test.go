package compare

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/velora-beauty/procurement-backend/pkg/enums"
	pkgerrors "github.com/velora-beauty/procurement-backend/pkg/errors"
)

func validQuote() QuoteRecord {
	return QuoteRecord{
		ProductName:      "Face Serum 30ML",
		Marketplace:      "1688",
		Supplier:         "SupplierX",
		Price:            decimal.NewFromInt(45),
		Rating:           4.8,
		DeliveryTier:     enums.DeliveryTierFast,
		MinOrderQuantity: "10 units",
	}
}

func TestQuoteRecordValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		if err := validQuote().Validate(); err != nil {
			t.Fatalf("expected valid quote, got %v", err)
		}
	})

	t.Run("blankProductName", func(t *testing.T) {
		q := validQuote()
		q.ProductName = "   "
		expectValidationError(t, q.Validate())
	})

	t.Run("blankMarketplace", func(t *testing.T) {
		q := validQuote()
		q.Marketplace = ""
		expectValidationError(t, q.Validate())
	})

	t.Run("blankSupplier", func(t *testing.T) {
		q := validQuote()
		q.Supplier = ""
		expectValidationError(t, q.Validate())
	})

	t.Run("zeroPrice", func(t *testing.T) {
		q := validQuote()
		q.Price = decimal.Zero
		expectValidationError(t, q.Validate())
	})

	t.Run("negativePrice", func(t *testing.T) {
		q := validQuote()
		q.Price = decimal.NewFromInt(-3)
		expectValidationError(t, q.Validate())
	})

	t.Run("ratingAboveFive", func(t *testing.T) {
		q := validQuote()
		q.Rating = 5.1
		expectValidationError(t, q.Validate())
	})

	t.Run("negativeRating", func(t *testing.T) {
		q := validQuote()
		q.Rating = -0.1
		expectValidationError(t, q.Validate())
	})

	t.Run("unknownDeliveryTier", func(t *testing.T) {
		q := validQuote()
		q.DeliveryTier = "same-week"
		expectValidationError(t, q.Validate())
	})

	t.Run("boundaryRatingsAccepted", func(t *testing.T) {
		q := validQuote()
		q.Rating = 0
		if err := q.Validate(); err != nil {
			t.Fatalf("rating 0 should be valid: %v", err)
		}
		q.Rating = 5
		if err := q.Validate(); err != nil {
			t.Fatalf("rating 5 should be valid: %v", err)
		}
	})
}

func TestValidateSet(t *testing.T) {
	t.Run("emptySet", func(t *testing.T) {
		expectValidationError(t, validateSet(nil))
	})

	t.Run("mixedProductNames", func(t *testing.T) {
		a := validQuote()
		b := validQuote()
		b.ProductName = "Hair Mask 200ML"
		expectValidationError(t, validateSet([]QuoteRecord{a, b}))
	})

	t.Run("singleQuoteIsValid", func(t *testing.T) {
		if err := validateSet([]QuoteRecord{validQuote()}); err != nil {
			t.Fatalf("single-quote set should be valid: %v", err)
		}
	})
}

func expectValidationError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected %s, got %v", pkgerrors.CodeValidation, err)
	}
}
