package browse

import (
	"errors"
	"testing"

	"github.com/bjrfx/masakali-menu/internal/catalog"
)

func TestGroupByCategory_FirstSeenOrder(t *testing.T) {
	// Group order follows first occurrence within the result set,
	// which a sort can change from catalog order.
	c := Default()
	c.Sort = SortPriceHigh
	result := Apply(testCatalog(), c)

	groups, err := GroupByCategory(result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Highest-priced item is Chicken Vindaloo, so its category leads.
	if groups[0].Category != "Non-Veg Curries" {
		t.Errorf("expected Non-Veg Curries first, got %q", groups[0].Category)
	}
}

func TestGroupByCategory_Counts(t *testing.T) {
	groups, err := GroupByCategory(testCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantCounts := map[string]int{
		"Veg Appetizers":  2,
		"Veg Curries":     2,
		"Non-Veg Curries": 3,
		"Rice & Biryani":  1,
		"Breads":          1,
	}

	if len(groups) != len(wantCounts) {
		t.Fatalf("expected %d groups, got %d", len(wantCounts), len(groups))
	}
	for _, g := range groups {
		if g.Count != wantCounts[g.Category] {
			t.Errorf("%s: expected count %d, got %d", g.Category, wantCounts[g.Category], g.Count)
		}
		if g.Count != len(g.Items) {
			t.Errorf("%s: count %d does not match items %d", g.Category, g.Count, len(g.Items))
		}
	}
}

func TestGroupByCategory_EmptyResultSignals(t *testing.T) {
	_, err := GroupByCategory(nil)
	if !errors.Is(err, ErrNoResults) {
		t.Fatalf("expected ErrNoResults, got %v", err)
	}

	_, err = GroupByCategory([]catalog.Item{})
	if !errors.Is(err, ErrNoResults) {
		t.Fatalf("expected ErrNoResults for empty slice, got %v", err)
	}
}
