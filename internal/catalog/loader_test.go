package catalog

import (
	"errors"
	"testing"
)

func TestParseGroups_TopLevelShapeError(t *testing.T) {
	_, _, err := ParseGroups([]byte(`{"not": "an array"}`))
	if !errors.Is(err, ErrLoad) {
		t.Fatalf("expected ErrLoad, got %v", err)
	}
}

func TestParseGroups_SkipsMalformedGroups(t *testing.T) {
	data := []byte(`[
		{"category": "Breads", "items": [{"title": "Naan", "price": 3.5}]},
		{"category": "Broken", "items": "nope"},
		{"category": "No Items"},
		{"category": "Veg Curries", "items": [{"title": "Dal", "price": 8.0}]}
	]`)

	groups, skipped, err := ParseGroups(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if skipped != 2 {
		t.Errorf("expected 2 skipped groups, got %d", skipped)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Category != "Breads" || groups[1].Category != "Veg Curries" {
		t.Errorf("unexpected group order: %q, %q", groups[0].Category, groups[1].Category)
	}
}

func TestFlatten_DenseIDs(t *testing.T) {
	groups := []RawGroup{
		{Category: "Veg Appetizers", Items: []RawItem{
			{Title: "Samosa", Price: 5},
			{Title: "Pakora", Price: 6},
		}},
		{Category: "Chicken", Items: []RawItem{
			{Title: "Chicken Tikka", Price: 12},
		}},
		{Category: "Breads", Items: []RawItem{
			{Title: "Naan", Price: 3.5},
			{Title: "Roti", Price: 3},
		}},
	}

	items := Flatten(groups)

	total := 0
	for _, g := range groups {
		total += len(g.Items)
	}
	if len(items) != total {
		t.Fatalf("expected %d items, got %d", total, len(items))
	}

	// IDs must be exactly 1..N across all groups, no gaps or repeats.
	for i, it := range items {
		if it.ID != i+1 {
			t.Errorf("item %d: expected ID %d, got %d", i, i+1, it.ID)
		}
	}
}

func TestFlatten_DerivesOnceAtLoad(t *testing.T) {
	groups := []RawGroup{
		{Category: "Non-Veg Curries", Items: []RawItem{
			{Title: "Chicken Vindaloo", Price: 12.5},
		}},
		{Category: "Rice & Biryani", Items: []RawItem{
			{Title: "Veg Biryani", Price: 9.0},
		}},
	}

	items := Flatten(groups)

	if items[0].Vegetarian {
		t.Error("Chicken Vindaloo in Non-Veg Curries should be non-vegetarian")
	}
	if items[0].Spicy != 3 {
		t.Errorf("Chicken Vindaloo should be spice 3, got %d", items[0].Spicy)
	}

	if !items[1].Vegetarian {
		t.Error("Veg Biryani in Rice & Biryani should be vegetarian")
	}
	if items[1].Spicy != 0 {
		// "Biryani" is not a tier keyword.
		t.Errorf("Veg Biryani should be spice 0, got %d", items[1].Spicy)
	}
}

func TestFlatten_Defaults(t *testing.T) {
	groups := []RawGroup{
		{Category: "Breads", Items: []RawItem{{Title: "Naan", Price: 3.5}}},
	}

	items := Flatten(groups)

	if items[0].Description != "" {
		t.Errorf("absent description should default to empty, got %q", items[0].Description)
	}
	if items[0].Image != "" {
		t.Errorf("absent image should default to empty, got %q", items[0].Image)
	}
	if items[0].Category != "Breads" {
		t.Errorf("item should carry owning category, got %q", items[0].Category)
	}
}
