package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	CatalogLoads        prometheus.Counter
	CatalogLoadFailures prometheus.Counter
	CatalogItems        prometheus.Gauge
	GroupsSkipped       prometheus.Counter

	PipelineRuns    prometheus.Counter
	PipelineSeconds prometheus.Histogram
	NoResults       prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	loads := prometheus.NewCounter(prometheus.CounterOpts{Name: "menu_catalog_loads_total"})
	loadFailures := prometheus.NewCounter(prometheus.CounterOpts{Name: "menu_catalog_load_failures_total"})
	items := prometheus.NewGauge(prometheus.GaugeOpts{Name: "menu_catalog_items"})
	skipped := prometheus.NewCounter(prometheus.CounterOpts{Name: "menu_catalog_groups_skipped_total"})

	runs := prometheus.NewCounter(prometheus.CounterOpts{Name: "menu_pipeline_runs_total"})
	seconds := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "menu_pipeline_duration_seconds",
		Buckets: prometheus.DefBuckets,
	})
	noResults := prometheus.NewCounter(prometheus.CounterOpts{Name: "menu_pipeline_no_results_total"})

	r.MustRegister(loads, loadFailures, items, skipped, runs, seconds, noResults)
	return &Registry{
		reg:                 r,
		CatalogLoads:        loads,
		CatalogLoadFailures: loadFailures,
		CatalogItems:        items,
		GroupsSkipped:       skipped,
		PipelineRuns:        runs,
		PipelineSeconds:     seconds,
		NoResults:           noResults,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
