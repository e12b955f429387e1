package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	ScrapesTotal      prometheus.Counter
	ScrapeErrorsTotal *prometheus.CounterVec
	CacheHitsTotal    prometheus.Counter
	CacheMissesTotal  prometheus.Counter
	FallbacksTotal    *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ScrapesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "catalog_scrapes_total",
			Help: "The total number of successful catalog scrapes",
		}),
		ScrapeErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_scrape_errors_total",
			Help: "The total number of scrape failures recovered by fallback data",
		}, []string{"type"}), // e.g., 'fetch_failed', 'no_items'
		CacheHitsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "catalog_cache_hits_total",
			Help: "The total number of cache gets served from a live snapshot",
		}),
		CacheMissesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "catalog_cache_misses_total",
			Help: "The total number of cache gets that triggered a scrape",
		}),
		FallbacksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "matcher_fallbacks_total",
			Help: "The total number of keyword-only rankings",
		}, []string{"reason"}), // e.g., 'no_credentials', 'generate_failed'
	}
}

func (m *Metrics) IncScrapes() {
	m.ScrapesTotal.Inc()
}

func (m *Metrics) IncScrapeErrors(errorType string) {
	m.ScrapeErrorsTotal.WithLabelValues(errorType).Inc()
}

func (m *Metrics) IncCacheHits() {
	m.CacheHitsTotal.Inc()
}

func (m *Metrics) IncCacheMisses() {
	m.CacheMissesTotal.Inc()
}

func (m *Metrics) IncFallbacks(reason string) {
	m.FallbacksTotal.WithLabelValues(reason).Inc()
}
