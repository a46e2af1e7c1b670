package browse

import (
	"sort"
	"strings"

	"github.com/bjrfx/masakali-menu/internal/catalog"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Apply runs the filter/search/sort pipeline over the catalog items.
// Stages run in fixed order, each narrowing the previous stage's
// output. The input slice is never mutated; the result is a fresh
// slice in catalog order unless a sort is active.
func Apply(items []catalog.Item, c Criteria) []catalog.Item {
	out := filterCategory(items, c.Category)
	out = filterDietary(out, c.Dietary)
	out = filterSpice(out, c.Spice)
	out = filterSearch(out, c.Search)
	return sortItems(out, c.Sort)
}

func filterCategory(items []catalog.Item, category string) []catalog.Item {
	out := make([]catalog.Item, 0, len(items))
	for _, it := range items {
		if category == All || it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

func filterDietary(items []catalog.Item, dietary string) []catalog.Item {
	if dietary == All {
		return items
	}
	wantVeg := dietary == DietaryVegetarian

	out := items[:0]
	for _, it := range items {
		if it.Vegetarian == wantVeg {
			out = append(out, it)
		}
	}
	return out
}

func filterSpice(items []catalog.Item, spice string) []catalog.Item {
	if spice == All {
		return items
	}
	level := spiceValues[spice]

	out := items[:0]
	for _, it := range items {
		if it.Spicy == level {
			out = append(out, it)
		}
	}
	return out
}

func filterSearch(items []catalog.Item, search string) []catalog.Item {
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return items
	}

	out := items[:0]
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Title), q) ||
			strings.Contains(strings.ToLower(it.Description), q) ||
			strings.Contains(strings.ToLower(it.Category), q) {
			out = append(out, it)
		}
	}
	return out
}

// sortItems reorders the surviving set. All sorts are stable so ties
// retain their relative catalog order.
func sortItems(items []catalog.Item, mode string) []catalog.Item {
	if mode == SortDefault {
		return items
	}

	switch mode {
	case SortPriceLow:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price < items[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price > items[j].Price
		})
	case SortNameAZ:
		col := collate.New(language.English)
		sort.SliceStable(items, func(i, j int) bool {
			return col.CompareString(items[i].Title, items[j].Title) < 0
		})
	case SortNameZA:
		col := collate.New(language.English)
		sort.SliceStable(items, func(i, j int) bool {
			return col.CompareString(items[i].Title, items[j].Title) > 0
		})
	}
	return items
}
