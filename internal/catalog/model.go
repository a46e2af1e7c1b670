package catalog

import "time"

// RawItem is a menu item as it appears in the source document,
// before IDs and derived fields are assigned.
type RawItem struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Img         string  `json:"img"`
}

// RawGroup is one category block of the source document.
type RawGroup struct {
	Category string    `json:"category"`
	Items    []RawItem `json:"items"`
}

// Item is the normalized, immutable menu item used by the
// browse pipeline and the render surface.
type Item struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image,omitempty"`
	Vegetarian  bool    `json:"vegetarian"`
	Spicy       int     `json:"spicy"`
}

// Snapshot is one fully-loaded catalog. It is built once per load
// and never mutated afterwards; a failed reload leaves the previous
// snapshot in place.
type Snapshot struct {
	ID         string    `json:"id"`
	Items      []Item    `json:"items"`
	Categories []string  `json:"categories"`
	LoadedAt   time.Time `json:"loaded_at"`
}
