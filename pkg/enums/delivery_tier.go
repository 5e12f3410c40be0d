package enums

import "fmt"

// DeliveryTier is the coarse delivery-speed bucket used in scoring. The
// scoring core never sees free-text delivery estimates; callers map raw
// marketplace text to a tier before building a quote.
type DeliveryTier string

const (
	DeliveryTierFastest  DeliveryTier = "fastest"
	DeliveryTierFast     DeliveryTier = "fast"
	DeliveryTierStandard DeliveryTier = "standard"
)

var validDeliveryTiers = []DeliveryTier{
	DeliveryTierFastest,
	DeliveryTierFast,
	DeliveryTierStandard,
}

// String implements fmt.Stringer.
func (d DeliveryTier) String() string {
	return string(d)
}

// IsValid reports whether the value is a known DeliveryTier.
func (d DeliveryTier) IsValid() bool {
	for _, candidate := range validDeliveryTiers {
		if candidate == d {
			return true
		}
	}
	return false
}

// SortOrder returns the tier's position for ranking tie-breaks, fastest first.
func (d DeliveryTier) SortOrder() int {
	switch d {
	case DeliveryTierFastest:
		return 0
	case DeliveryTierFast:
		return 1
	default:
		return 2
	}
}

// ParseDeliveryTier converts raw input into a DeliveryTier.
func ParseDeliveryTier(value string) (DeliveryTier, error) {
	for _, candidate := range validDeliveryTiers {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid delivery tier %q", value)
}
