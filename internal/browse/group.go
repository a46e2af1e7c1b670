package browse

import (
	"errors"

	"github.com/bjrfx/masakali-menu/internal/catalog"
)

// ErrNoResults signals an empty result set. Callers surface an
// explicit "no results" state instead of rendering zero sections.
var ErrNoResults = errors.New("no items match the current filters")

// Group is one rendered category section.
type Group struct {
	Category string         `json:"category"`
	Count    int            `json:"count"`
	Items    []catalog.Item `json:"items"`
}

// GroupByCategory partitions a result set into category groups.
// Group order is first occurrence within the result set, not
// catalog-wide or alphabetical order.
func GroupByCategory(items []catalog.Item) ([]Group, error) {
	if len(items) == 0 {
		return nil, ErrNoResults
	}

	var groups []Group
	index := make(map[string]int)

	for _, it := range items {
		pos, ok := index[it.Category]
		if !ok {
			pos = len(groups)
			index[it.Category] = pos
			groups = append(groups, Group{Category: it.Category})
		}
		groups[pos].Items = append(groups[pos].Items, it)
		groups[pos].Count++
	}
	return groups, nil
}
