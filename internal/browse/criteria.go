package browse

import (
	"errors"
	"fmt"
)

// Selector value accepted by every filter to mean "no filtering".
const All = "all"

// Dietary filter values.
const (
	DietaryVegetarian    = "vegetarian"
	DietaryNonVegetarian = "non-vegetarian"
)

// Sort modes. SortDefault preserves catalog order.
const (
	SortDefault   = "default"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortNameAZ    = "name-az"
	SortNameZA    = "name-za"
)

// Spice filter values ("all" or "0".."3").
var spiceValues = map[string]int{"0": 0, "1": 1, "2": 2, "3": 3}

// Criteria is the current combination of selections driving the
// pipeline. It is rebuilt per request, never stored.
type Criteria struct {
	Category string
	Dietary  string
	Spice    string
	Search   string
	Sort     string
}

// Default returns the reset state: no filters, catalog order.
func Default() Criteria {
	return Criteria{
		Category: All,
		Dietary:  All,
		Spice:    All,
		Search:   "",
		Sort:     SortDefault,
	}
}

var ErrInvalidCriteria = errors.New("invalid filter criteria")

// Validate rejects selector values outside the control surface's
// option lists. Category is not validated against the catalog: an
// unknown category simply matches nothing.
func (c Criteria) Validate() error {
	switch c.Dietary {
	case All, DietaryVegetarian, DietaryNonVegetarian:
	default:
		return fmt.Errorf("%w: dietary %q", ErrInvalidCriteria, c.Dietary)
	}

	if c.Spice != All {
		if _, ok := spiceValues[c.Spice]; !ok {
			return fmt.Errorf("%w: spice %q", ErrInvalidCriteria, c.Spice)
		}
	}

	switch c.Sort {
	case SortDefault, SortPriceLow, SortPriceHigh, SortNameAZ, SortNameZA:
	default:
		return fmt.Errorf("%w: sort %q", ErrInvalidCriteria, c.Sort)
	}

	return nil
}

// Options are the control surface's selectable values, minus the
// category list, which comes from the catalog.
type Options struct {
	Dietary []string `json:"dietary"`
	Spice   []string `json:"spice"`
	Sort    []string `json:"sort"`
}

func ControlOptions() Options {
	return Options{
		Dietary: []string{All, DietaryVegetarian, DietaryNonVegetarian},
		Spice:   []string{All, "0", "1", "2", "3"},
		Sort:    []string{SortDefault, SortPriceLow, SortPriceHigh, SortNameAZ, SortNameZA},
	}
}
