package catalog

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/bjrfx/masakali-menu/internal/debounce"
	"github.com/bjrfx/masakali-menu/internal/metrics"

	"github.com/google/uuid"
)

// Service owns the current catalog snapshot. The snapshot is replaced
// wholesale on a successful reload and left untouched on a failed one,
// so readers always see a complete catalog or none at all.
type Service struct {
	source  Source
	metrics *metrics.Registry

	mu   sync.RWMutex
	snap *Snapshot

	reload *debounce.Debouncer
}

// ReloadCoalesceDelay collapses bursts of admin reload requests into
// a single source fetch.
const ReloadCoalesceDelay = 500 * time.Millisecond

func NewService(source Source, reg *metrics.Registry) *Service {
	return &Service{
		source:  source,
		metrics: reg,
		reload:  debounce.New(ReloadCoalesceDelay),
	}
}

// Snapshot returns the current catalog, or nil before the first
// successful load.
func (s *Service) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Items returns the current flat catalog.
func (s *Service) Items() []Item {
	if snap := s.Snapshot(); snap != nil {
		return snap.Items
	}
	return nil
}

// Categories returns the distinct category names in first-seen order,
// for populating the category selector.
func (s *Service) Categories() []string {
	if snap := s.Snapshot(); snap != nil {
		return snap.Categories
	}
	return nil
}

// Reload fetches and flattens the catalog, replacing the snapshot on
// success. On failure the previous snapshot is kept and the error is
// returned to the caller.
func (s *Service) Reload(ctx context.Context) (*Snapshot, error) {
	groups, skipped, err := s.source.Fetch(ctx)
	if err != nil {
		if s.metrics != nil {
			s.metrics.CatalogLoadFailures.Inc()
		}
		return nil, err
	}

	items := Flatten(groups)
	snap := &Snapshot{
		ID:         uuid.New().String(),
		Items:      items,
		Categories: categoriesOf(items),
		LoadedAt:   time.Now(),
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.CatalogLoads.Inc()
		s.metrics.CatalogItems.Set(float64(len(items)))
		s.metrics.GroupsSkipped.Add(float64(skipped))
	}

	log.Printf("catalog: loaded snapshot %s (%d items, %d categories, %d groups skipped)",
		snap.ID, len(items), len(snap.Categories), skipped)
	return snap, nil
}

// RequestReload schedules a coalesced reload. Bursts of requests
// within the coalesce window result in one fetch.
func (s *Service) RequestReload() {
	s.reload.Trigger(func() {
		if _, err := s.Reload(context.Background()); err != nil {
			log.Printf("catalog: background reload failed, keeping previous snapshot: %v", err)
		}
	})
}
