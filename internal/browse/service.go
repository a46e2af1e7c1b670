package browse

import (
	"errors"
	"time"

	"github.com/bjrfx/masakali-menu/internal/catalog"
	"github.com/bjrfx/masakali-menu/internal/metrics"
)

// Result is one pipeline run over the current catalog snapshot.
// NoResults is the explicit empty-state signal; Sections is never a
// silently empty list.
type Result struct {
	SnapshotID string    `json:"snapshot_id"`
	Total      int       `json:"total"`
	NoResults  bool      `json:"no_results"`
	Sections   []Section `json:"sections"`
}

var ErrNoCatalog = errors.New("catalog not loaded")

// Service runs the browse pipeline against the catalog service's
// latest snapshot.
type Service struct {
	catalog *catalog.Service
	metrics *metrics.Registry
}

func NewService(cat *catalog.Service, reg *metrics.Registry) *Service {
	return &Service{catalog: cat, metrics: reg}
}

// Browse applies the criteria to the latest snapshot and renders the
// grouped sections.
func (s *Service) Browse(c Criteria) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	snap := s.catalog.Snapshot()
	if snap == nil {
		return nil, ErrNoCatalog
	}

	start := time.Now()
	items := Apply(snap.Items, c)

	result := &Result{
		SnapshotID: snap.ID,
		Total:      len(items),
	}

	groups, err := GroupByCategory(items)
	if errors.Is(err, ErrNoResults) {
		result.NoResults = true
		result.Sections = []Section{}
	} else {
		result.Sections = BuildSections(groups)
	}

	if s.metrics != nil {
		s.metrics.PipelineRuns.Inc()
		s.metrics.PipelineSeconds.Observe(time.Since(start).Seconds())
		if result.NoResults {
			s.metrics.NoResults.Inc()
		}
	}
	return result, nil
}

// Categories exposes the catalog's category list for the control
// surface, in first-seen order.
func (s *Service) Categories() []string {
	return s.catalog.Categories()
}
