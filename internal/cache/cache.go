package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/user/assessment-finder/internal/domain"
	"github.com/user/assessment-finder/internal/monitoring"
)

// Scraper produces a fresh catalog snapshot. It never fails.
type Scraper interface {
	Scrape(ctx context.Context) domain.Snapshot
}

// SnapshotStore is the optional durable tier behind the in-memory slot.
type SnapshotStore interface {
	Save(ctx context.Context, snap domain.Snapshot, ttl time.Duration) error
	Load(ctx context.Context) (*domain.Snapshot, error)
}

// Cache holds a single catalog snapshot with a TTL. Expiry is passive: it
// is checked on Get, and an expired or absent snapshot is replaced by a
// synchronous scrape. The mutex doubles as a single-flight guard, so
// concurrent cold Gets trigger exactly one scrape.
type Cache struct {
	mu       sync.Mutex
	snapshot *domain.Snapshot

	ttl     time.Duration
	scraper Scraper
	store   SnapshotStore // nil when persistence is disabled
	metrics *monitoring.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

func New(scraper Scraper, store SnapshotStore, ttl time.Duration, m *monitoring.Metrics, l *zap.Logger) *Cache {
	return &Cache{
		ttl:     ttl,
		scraper: scraper,
		store:   store,
		metrics: m,
		logger:  l,
		now:     time.Now,
	}
}

// Get returns the cached snapshot, scraping first if none is held or the
// TTL has elapsed.
func (c *Cache) Get(ctx context.Context) domain.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.fresh() {
		c.metrics.IncCacheHits()
		return *c.snapshot
	}

	c.metrics.IncCacheMisses()

	// Cold start: a snapshot persisted within the TTL saves a scrape.
	if c.snapshot == nil && c.store != nil {
		if snap, err := c.store.Load(ctx); err != nil {
			c.logger.Warn("failed to load persisted snapshot", zap.Error(err))
		} else if snap != nil && c.now().Sub(snap.FetchedAt) < c.ttl {
			c.logger.Info("loaded persisted snapshot", zap.Int("assessments", len(snap.Assessments)))
			c.snapshot = snap
			return *snap
		}
	}

	return c.replace(ctx)
}

// Refresh unconditionally re-scrapes and replaces the snapshot.
func (c *Cache) Refresh(ctx context.Context) domain.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.replace(ctx)
}

// Status reports whether a snapshot is held, without triggering a scrape.
func (c *Cache) Status() domain.CacheStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snapshot == nil {
		return domain.CacheStatus{}
	}
	return domain.CacheStatus{
		HasAssessments:  true,
		AssessmentCount: len(c.snapshot.Assessments),
	}
}

// replace scrapes and swaps in the new snapshot. Callers must hold the lock.
func (c *Cache) replace(ctx context.Context) domain.Snapshot {
	snap := c.scraper.Scrape(ctx)
	c.snapshot = &snap

	if c.store != nil {
		if err := c.store.Save(ctx, snap, c.ttl); err != nil {
			c.logger.Warn("failed to persist snapshot", zap.Error(err))
		}
	}
	return snap
}

func (c *Cache) fresh() bool {
	return c.snapshot != nil && c.now().Sub(c.snapshot.FetchedAt) < c.ttl
}
