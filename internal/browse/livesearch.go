package browse

import (
	"sync"
	"time"

	"github.com/bjrfx/masakali-menu/internal/debounce"
)

// Controller owns the current criteria for one browsing session and
// re-runs the pipeline on every change. Search input is debounced on
// the trailing edge: only the most recent pending keystroke within
// the window executes, earlier ones are discarded.
//
// Results are delivered through the callback, which always reflects
// the criteria and catalog snapshot current at execution time.
type Controller struct {
	service  *Service
	search   *debounce.Debouncer
	onResult func(*Result, error)

	mu       sync.Mutex
	criteria Criteria
}

func NewController(service *Service, delay time.Duration, onResult func(*Result, error)) *Controller {
	if delay <= 0 {
		delay = debounce.DefaultSearchDelay
	}
	return &Controller{
		service:  service,
		search:   debounce.New(delay),
		onResult: onResult,
		criteria: Default(),
	}
}

// Criteria returns the session's current selections.
func (ctl *Controller) Criteria() Criteria {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	return ctl.criteria
}

// SetCategory, SetDietary, SetSpice and SetSort re-run the pipeline
// immediately; selector changes are discrete events, not typed input.
func (ctl *Controller) SetCategory(category string) { ctl.update(func(c *Criteria) { c.Category = category }) }
func (ctl *Controller) SetDietary(dietary string)   { ctl.update(func(c *Criteria) { c.Dietary = dietary }) }
func (ctl *Controller) SetSpice(spice string)       { ctl.update(func(c *Criteria) { c.Spice = spice }) }
func (ctl *Controller) SetSort(sortMode string)     { ctl.update(func(c *Criteria) { c.Sort = sortMode }) }

// SetSearch records the new search text and schedules a debounced
// pipeline run. A fresh keystroke resets the pending delay.
func (ctl *Controller) SetSearch(text string) {
	ctl.mu.Lock()
	ctl.criteria.Search = text
	ctl.mu.Unlock()

	ctl.search.Trigger(ctl.run)
}

// Reset clears all criteria to defaults and re-runs immediately,
// cancelling any pending search.
func (ctl *Controller) Reset() {
	ctl.search.Stop()

	ctl.mu.Lock()
	ctl.criteria = Default()
	ctl.mu.Unlock()

	ctl.run()
}

func (ctl *Controller) update(apply func(*Criteria)) {
	ctl.mu.Lock()
	apply(&ctl.criteria)
	ctl.mu.Unlock()

	ctl.run()
}

func (ctl *Controller) run() {
	result, err := ctl.service.Browse(ctl.Criteria())
	ctl.onResult(result, err)
}
