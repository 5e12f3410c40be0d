package search

import (
	"fmt"
	"strings"

	"github.com/velora-beauty/procurement-backend/pkg/enums"
)

// TierMapper folds the free-text delivery estimates marketplaces return into
// the closed delivery-tier enum. The table is integrator configuration, not
// scoring logic: overrides are merged over the defaults at construction.
type TierMapper struct {
	rules map[string]enums.DeliveryTier
}

func defaultTierRules() map[string]enums.DeliveryTier {
	return map[string]enums.DeliveryTier{
		"next-day": enums.DeliveryTierFastest,
		"next day": enums.DeliveryTierFastest,
		"次日达":      enums.DeliveryTierFastest,
		"1-2 days": enums.DeliveryTierFast,
		"1–2 days": enums.DeliveryTierFast,
	}
}

// NewTierMapper builds a mapper from the default table plus the supplied
// phrase→tier overrides.
func NewTierMapper(overrides map[string]string) (*TierMapper, error) {
	rules := defaultTierRules()
	for phrase, raw := range overrides {
		tier, err := enums.ParseDeliveryTier(strings.TrimSpace(strings.ToLower(raw)))
		if err != nil {
			return nil, fmt.Errorf("delivery tier mapping %q: %w", phrase, err)
		}
		rules[normalizePhrase(phrase)] = tier
	}
	return &TierMapper{rules: rules}, nil
}

// Map folds a delivery description into a tier; unmapped text is standard.
func (m *TierMapper) Map(description string) enums.DeliveryTier {
	if m == nil {
		return enums.DeliveryTierStandard
	}
	if tier, ok := m.rules[normalizePhrase(description)]; ok {
		return tier
	}
	return enums.DeliveryTierStandard
}

func normalizePhrase(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
