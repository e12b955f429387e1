package catalog

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/user/assessment-finder/internal/domain"
	"github.com/user/assessment-finder/internal/monitoring"
)

// Scraper produces catalog snapshots. It never fails: any fetch or
// extraction problem is absorbed by substituting the static fallback set,
// so callers always receive a non-empty catalog.
type Scraper struct {
	fetcher   Fetcher
	extractor *Extractor
	metrics   *monitoring.Metrics
	logger    *zap.Logger
}

func NewScraper(f Fetcher, e *Extractor, m *monitoring.Metrics, l *zap.Logger) *Scraper {
	return &Scraper{fetcher: f, extractor: e, metrics: m, logger: l}
}

func (s *Scraper) Scrape(ctx context.Context) domain.Snapshot {
	markup, err := s.fetcher.Fetch(ctx)
	if err != nil {
		s.logger.Warn("catalog fetch failed, using fallback data", zap.Error(err))
		s.metrics.IncScrapeErrors("fetch_failed")
		return s.snapshot(FallbackAssessments())
	}

	items := s.extractor.Extract(markup)
	if len(items) == 0 {
		s.logger.Warn("no assessments extracted, using fallback data")
		s.metrics.IncScrapeErrors("no_items")
		return s.snapshot(FallbackAssessments())
	}

	s.logger.Info("scraped catalog", zap.Int("assessments", len(items)))
	s.metrics.IncScrapes()
	return s.snapshot(items)
}

func (s *Scraper) snapshot(items []domain.Assessment) domain.Snapshot {
	return domain.Snapshot{Assessments: items, FetchedAt: time.Now()}
}
