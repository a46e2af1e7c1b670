// Package viewport implements the scroll-sync geometry for the
// category indicator: deciding which rendered category group is
// "active" for a given scroll position, whether the indicator should
// be visible at all, and how the indicator strip scrolls its active
// entry into view.
//
// Everything here is plain interval arithmetic over measurements the
// render surface reports; no part of it touches a display.
package viewport

import (
	"math"
	"sync"
)

// Span is a one-dimensional extent, vertical for group boundaries and
// horizontal for indicator strip entries.
type Span struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

func (s Span) Size() float64   { return s.End - s.Start }
func (s Span) Center() float64 { return (s.Start + s.End) / 2 }

// View is a scrolled window over content on the same axis.
type View struct {
	Offset float64 `json:"offset"`
	Size   float64 `json:"size"`
}

func (v View) End() float64    { return v.Offset + v.Size }
func (v View) Center() float64 { return v.Offset + v.Size/2 }

// intersects reports whether any part of the span is inside the view.
func intersects(s Span, v View) bool {
	return s.End > v.Offset && s.Start < v.End()
}

// GroupSpan is one rendered category group's measured extent.
type GroupSpan struct {
	Category string `json:"category"`
	Span
}

// Tracker keeps the active category synchronized with scroll
// position. The render surface calls SetGroups after every re-render
// (the boundary measurements change whenever the group set does) and
// Update on every scroll event.
type Tracker struct {
	mu     sync.Mutex
	groups []GroupSpan
	active string
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// SetGroups replaces the boundary measurements. The previous active
// category carries over if it is still rendered, otherwise it resets.
func (t *Tracker) SetGroups(groups []GroupSpan) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.groups = append([]GroupSpan(nil), groups...)

	for _, g := range t.groups {
		if g.Category == t.active {
			return
		}
	}
	t.active = ""
}

// Active returns the currently active category, or "" when nothing
// has been selected yet.
func (t *Tracker) Active() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Update recomputes the active category for a scroll position. A
// group is a candidate if any part of it intersects the view; among
// candidates the one whose center is closest to the view center wins.
// On an exact distance tie the currently active group is kept, so the
// indicator does not flicker between equidistant neighbours. With no
// candidates the previous selection stands.
func (t *Tracker) Update(v View) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	best := ""
	bestDist := math.Inf(1)
	center := v.Center()

	for _, g := range t.groups {
		if !intersects(g.Span, v) {
			continue
		}
		dist := math.Abs(g.Center() - center)
		switch {
		case dist < bestDist:
			best = g.Category
			bestDist = dist
		case dist == bestDist && g.Category == t.active:
			best = g.Category
		}
	}

	if best != "" {
		t.active = best
	}
	return t.active
}

// Visible reports whether the indicator should be shown: true while
// the content region is within band of the view on either side.
func Visible(content Span, v View, band float64) bool {
	return content.End > v.Offset-band && content.Start < v.End()+band
}

// TargetOffset is the scroll offset that brings a group into view
// aligned to the start of the viewport (click-to-scroll).
func TargetOffset(group Span) float64 {
	return group.Start
}
