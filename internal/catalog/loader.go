package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

// ErrLoad means the catalog source was unreachable or its top-level
// shape was wrong. The first load failing is fatal to startup; a
// reload failing keeps the previous snapshot.
var ErrLoad = errors.New("catalog load failed")

// rawGroupEnvelope defers decoding of the items array so that one
// malformed group can be skipped without failing the whole document.
type rawGroupEnvelope struct {
	Category string          `json:"category"`
	Items    json.RawMessage `json:"items"`
}

// ParseGroups decodes the source document. The document must be an
// array of category groups; a group whose items field is absent or
// not an item array is skipped, not fatal.
func ParseGroups(data []byte) ([]RawGroup, int, error) {
	var envelopes []rawGroupEnvelope
	if err := json.Unmarshal(data, &envelopes); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	groups := make([]RawGroup, 0, len(envelopes))
	skipped := 0
	for _, env := range envelopes {
		if len(env.Items) == 0 {
			log.Printf("catalog: skipping group %q: missing items", env.Category)
			skipped++
			continue
		}
		var items []RawItem
		if err := json.Unmarshal(env.Items, &items); err != nil {
			log.Printf("catalog: skipping group %q: %v", env.Category, err)
			skipped++
			continue
		}
		groups = append(groups, RawGroup{Category: env.Category, Items: items})
	}
	return groups, skipped, nil
}

// Flatten turns category groups into the flat item list. IDs are
// assigned 1-based in document order, dense across all groups, and
// the vegetarian flag and spice level are derived exactly once here.
func Flatten(groups []RawGroup) []Item {
	var items []Item
	id := 1
	for _, g := range groups {
		for _, raw := range g.Items {
			items = append(items, Item{
				ID:          id,
				Title:       raw.Title,
				Description: raw.Description,
				Price:       raw.Price,
				Category:    g.Category,
				Image:       raw.Img,
				Vegetarian:  IsVegetarian(g.Category),
				Spicy:       SpiceLevel(raw.Title, raw.Description),
			})
			id++
		}
	}
	return items
}

// categoriesOf collects the distinct category names in first-seen order.
func categoriesOf(items []Item) []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range items {
		if !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	return out
}
