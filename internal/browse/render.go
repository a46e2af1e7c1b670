package browse

import (
	"fmt"

	"github.com/bjrfx/masakali-menu/internal/catalog"
)

// Spice badge labels per level. Level 0 gets no badge.
var spiceBadges = map[int]string{
	1: "Medium",
	2: "Spicy",
	3: "Extra Spicy",
}

// Fallback icons for items without an image, keyed by category.
var categoryIcons = map[string]string{
	"Veg Appetizers":  "🥗",
	"Chaat":           "🥘",
	"Veg Tandoori":    "🫓",
	"Veg Curries":     "🍛",
	"Rice & Biryani":  "🍚",
	"Breads":          "🫓",
	"Extras":          "🥣",
	"Chicken":         "🍗",
	"Lamb":            "🍖",
	"Seafood":         "🦐",
	"Non-Veg Curries": "🍲",
	"Desserts":        "🍮",
	"Drinks":          "🥤",
}

const fallbackIcon = "🍽️"

// Card is the render surface's view of one menu item.
type Card struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PriceLabel  string `json:"price_label"`
	Category    string `json:"category"`
	Image       string `json:"image,omitempty"`
	Icon        string `json:"icon,omitempty"`
	DietBadge   string `json:"diet_badge"`
	SpiceBadge  string `json:"spice_badge,omitempty"`
}

// Section is one rendered category group of cards.
type Section struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Cards    []Card `json:"cards"`
}

// BuildSections turns category groups into render-ready sections.
func BuildSections(groups []Group) []Section {
	sections := make([]Section, 0, len(groups))
	for _, g := range groups {
		sec := Section{
			Category: g.Category,
			Count:    g.Count,
			Cards:    make([]Card, 0, len(g.Items)),
		}
		for _, it := range g.Items {
			sec.Cards = append(sec.Cards, buildCard(it))
		}
		sections = append(sections, sec)
	}
	return sections
}

func buildCard(it catalog.Item) Card {
	card := Card{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		PriceLabel:  priceLabel(it.Price),
		Category:    it.Category,
		Image:       it.Image,
		DietBadge:   dietBadge(it.Vegetarian),
		SpiceBadge:  spiceBadges[it.Spicy],
	}
	if card.Image == "" {
		card.Icon = iconFor(it.Category)
	}
	return card
}

func priceLabel(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

func dietBadge(vegetarian bool) string {
	if vegetarian {
		return "Veg"
	}
	return "Non-Veg"
}

func iconFor(category string) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}
	return fallbackIcon
}
