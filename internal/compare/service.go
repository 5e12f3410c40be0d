package compare

import (
	"context"
	"fmt"

	"github.com/velora-beauty/procurement-backend/pkg/logger"
	"github.com/velora-beauty/procurement-backend/pkg/metrics"
)

// Service exposes the comparison operations consumed by the API layer.
type Service interface {
	Compare(ctx context.Context, quotes []QuoteRecord) (*Result, error)
}

type service struct {
	engine  *Engine
	logg    *logger.Logger
	metrics *metrics.ComparisonMetrics
}

// NewService constructs a comparison service instance.
func NewService(engine *Engine, logg *logger.Logger, m *metrics.ComparisonMetrics) (Service, error) {
	if engine == nil {
		return nil, fmt.Errorf("ranking engine required")
	}
	return &service{
		engine:  engine,
		logg:    logg,
		metrics: m,
	}, nil
}

// Compare ranks the supplied quote set and returns the full decision payload.
func (s *service) Compare(ctx context.Context, quotes []QuoteRecord) (*Result, error) {
	result, err := s.engine.Rank(quotes)
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveComparison(len(quotes))
	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{
			"product":         result.BestDeal.ProductName,
			"quotes":          len(quotes),
			"best_supplier":   result.BestDeal.Supplier,
			"savings_percent": result.Statistics.SavingsPercent,
		})
		s.logg.Info(ctx, "comparison.completed")
	}
	return result, nil
}
