package catalog

import "strings"

// Category keyword tables for the vegetarian flag.
// The non-veg check runs first and always wins.
var nonVegKeywords = []string{
	"Chicken",
	"Lamb",
	"Seafood",
	"Fish",
	"Shrimp",
	"Non-Veg",
}

var vegKeywords = []string{
	"Veg Appetizers",
	"Chaat",
	"Veg Tandoori",
	"Veg Curries",
	"Rice & Biryani",
	"Breads",
	"Extras",
	"Vegan Menu Categories",
}

// IsVegetarian decides the dietary flag from the category name alone.
// Matching is case-sensitive substring matching; categories matching
// neither table default to non-vegetarian.
func IsVegetarian(category string) bool {
	for _, kw := range nonVegKeywords {
		if strings.Contains(category, kw) {
			return false
		}
	}
	for _, kw := range vegKeywords {
		if strings.Contains(category, kw) {
			return true
		}
	}
	return false
}

// SpiceLevel scores an item 0-3 from its title and description.
// Tiers are checked hottest-first; the first match wins.
func SpiceLevel(title, description string) int {
	text := strings.ToLower(title + " " + description)

	switch {
	case strings.Contains(text, "vindaloo"),
		strings.Contains(text, "extra spicy"):
		return 3
	case strings.Contains(text, "chilli"),
		strings.Contains(text, "spicy"),
		strings.Contains(text, "65"):
		return 2
	case strings.Contains(text, "masala"),
		strings.Contains(text, "tandoori"),
		strings.Contains(text, "curry"):
		return 1
	default:
		return 0
	}
}
