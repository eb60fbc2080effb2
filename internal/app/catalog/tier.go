package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Tier is the service class of a package.
type Tier string

const (
	TierLimited   Tier = "Limited"
	TierUnlimited Tier = "Unlimited"
)

var ErrUnknownTier = errors.New("unknown tier")

var tiers = []Tier{TierLimited, TierUnlimited}

// ParseTier matches s against the known tiers ignoring case and surrounding
// spaces. normalized is true when s was not already in canonical form.
func ParseTier(s string) (tier Tier, normalized bool, err error) {
	trimmed := strings.TrimSpace(s)
	for _, t := range tiers {
		if strings.EqualFold(trimmed, string(t)) {
			return t, s != string(t), nil
		}
	}
	return "", false, fmt.Errorf("%w: %q", ErrUnknownTier, s)
}

// Filter selects packages by tier. FilterAll passes every package.
type Filter string

const (
	FilterAll       Filter = "All"
	FilterLimited   Filter = Filter(TierLimited)
	FilterUnlimited Filter = Filter(TierUnlimited)
)

var ErrUnknownFilter = errors.New("unknown filter")

// Filters returns the selectable filters in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterLimited, FilterUnlimited}
}

func ParseFilter(s string) (Filter, error) {
	for _, f := range Filters() {
		if Filter(s) == f {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFilter, s)
}

func (f Filter) Matches(t Tier) bool {
	return f == FilterAll || Tier(f) == t
}
