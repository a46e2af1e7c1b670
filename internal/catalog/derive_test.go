package catalog

import "testing"

func TestIsVegetarian_VegCategories(t *testing.T) {
	vegCategories := []string{
		"Veg Appetizers",
		"Chaat",
		"Veg Tandoori",
		"Veg Curries",
		"Rice & Biryani",
		"Breads",
		"Extras",
	}

	for _, category := range vegCategories {
		if !IsVegetarian(category) {
			t.Errorf("expected %q to be vegetarian", category)
		}
	}
}

func TestIsVegetarian_NonVegKeywordWins(t *testing.T) {
	// Non-veg keywords take precedence even when a veg keyword is
	// also present in the category name.
	cases := []string{
		"Chicken Curries",
		"Lamb Tandoori",
		"Seafood Specials",
		"Fish Chaat",
		"Shrimp Rice & Biryani",
		"Non-Veg Curries",
	}

	for _, category := range cases {
		if IsVegetarian(category) {
			t.Errorf("expected %q to be non-vegetarian", category)
		}
	}
}

func TestIsVegetarian_UnknownCategoryDefaultsNonVeg(t *testing.T) {
	if IsVegetarian("Chef Specials") {
		t.Error("unmatched category should default to non-vegetarian")
	}
}

func TestIsVegetarian_Pure(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := IsVegetarian("Veg Curries"); !got {
			t.Fatalf("call %d: expected true", i)
		}
		if got := IsVegetarian("Chicken"); got {
			t.Fatalf("call %d: expected false", i)
		}
	}
}

func TestSpiceLevel_Tiers(t *testing.T) {
	cases := []struct {
		title       string
		description string
		want        int
	}{
		{"Chicken Vindaloo", "", 3},
		{"Paneer", "extra spicy on request", 3},
		{"Chilli Paneer", "", 2},
		{"Chicken 65", "", 2},
		{"Spicy Noodles", "", 2},
		{"Paneer Butter Masala", "", 1},
		{"Tandoori Roti", "", 1},
		{"Egg Curry", "", 1},
		{"Plain Rice", "steamed basmati", 0},
		{"Veg Biryani", "", 0},
	}

	for _, tc := range cases {
		got := SpiceLevel(tc.title, tc.description)
		if got != tc.want {
			t.Errorf("SpiceLevel(%q, %q) = %d, want %d", tc.title, tc.description, got, tc.want)
		}
	}
}

func TestSpiceLevel_HottestTierWins(t *testing.T) {
	// "vindaloo" (tier 3) beats "masala" (tier 1) in the same text.
	if got := SpiceLevel("Vindaloo Masala", ""); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}

	// "extra spicy" must hit tier 3 before "spicy" hits tier 2.
	if got := SpiceLevel("Wings", "extra spicy sauce"); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestSpiceLevel_CaseInsensitive(t *testing.T) {
	if got := SpiceLevel("CHICKEN VINDALOO", ""); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}
