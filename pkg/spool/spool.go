// Package spool estimates filament cost from Spoolman inventory data. The
// inventory itself comes through the persistence boundary; this package only
// does the arithmetic and the spool picking.
package spool

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"tableflip.dev/shelf/pkg/api"
)

// Estimate is the cost breakdown for printing a given weight from a spool.
type Estimate struct {
	Spool      api.Spool
	Grams      float64
	PricePerKg float64
	Cost       float64
	// Short flags that the spool does not hold enough filament.
	Short bool
}

// ForSpool computes the cost of printing grams from s. Spools without a
// usable price or initial weight cannot be estimated.
func ForSpool(s api.Spool, grams float64) (Estimate, error) {
	if grams <= 0 {
		return Estimate{}, errors.New("spool: weight must be positive")
	}
	if s.Price <= 0 || s.InitialWeight <= 0 {
		return Estimate{}, fmt.Errorf("spool: %q has no usable pricing", s.Name)
	}
	perKg := s.Price / (s.InitialWeight / 1000)
	return Estimate{
		Spool:      s,
		Grams:      grams,
		PricePerKg: perKg,
		Cost:       perKg * grams / 1000,
		Short:      s.RemainingWeight < grams,
	}, nil
}

// Cheapest picks the lowest-cost non-archived spool matching material (case
// insensitive, empty matches everything) that still holds enough filament.
// When no spool holds enough, the cheapest short spool is returned with
// Short set so the caller can warn instead of failing.
func Cheapest(spools []api.Spool, material string, grams float64) (Estimate, bool) {
	estimates := make([]Estimate, 0, len(spools))
	for _, s := range spools {
		if s.Archived {
			continue
		}
		if material != "" && !strings.EqualFold(s.Material, material) {
			continue
		}
		est, err := ForSpool(s, grams)
		if err != nil {
			continue
		}
		estimates = append(estimates, est)
	}
	if len(estimates) == 0 {
		return Estimate{}, false
	}

	sort.SliceStable(estimates, func(i, j int) bool {
		// Spools with enough filament beat short ones regardless of price.
		if estimates[i].Short != estimates[j].Short {
			return !estimates[i].Short
		}
		return estimates[i].Cost < estimates[j].Cost
	})
	return estimates[0], true
}

// FormatCost renders a cost with the configured currency symbol.
func FormatCost(cost float64, currency string) string {
	if currency == "" {
		currency = "$"
	}
	return fmt.Sprintf("%s%.2f", currency, cost)
}
