package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/user/assessment-finder/internal/domain"
	"github.com/user/assessment-finder/internal/monitoring"
)

type fakeScraper struct {
	calls     atomic.Int64
	delay     time.Duration
	fetchedAt time.Time
}

func (f *fakeScraper) Scrape(_ context.Context) domain.Snapshot {
	n := f.calls.Add(1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	fetchedAt := f.fetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now()
	}
	return domain.Snapshot{
		Assessments: []domain.Assessment{
			{ID: "1", Title: "First"},
			{ID: "2", Title: "Second"},
		},
		FetchedAt: fetchedAt.Add(time.Duration(n-1) * time.Nanosecond),
	}
}

type fakeStore struct {
	mu       sync.Mutex
	snapshot *domain.Snapshot
	saves    int
}

func (s *fakeStore) Save(_ context.Context, snap domain.Snapshot, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = &snap
	s.saves++
	return nil
}

func (s *fakeStore) Load(_ context.Context) (*domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot, nil
}

func newTestCache(scraper Scraper, store SnapshotStore, ttl time.Duration) *Cache {
	metrics := monitoring.NewMetrics(prometheus.NewRegistry())
	return New(scraper, store, ttl, metrics, zap.NewNop())
}

func TestGetCachesUntilTTL(t *testing.T) {
	base := time.Now()
	scraper := &fakeScraper{fetchedAt: base}
	c := newTestCache(scraper, nil, time.Hour)

	current := base
	c.now = func() time.Time { return current }

	first := c.Get(context.Background())
	second := c.Get(context.Background())
	if got := scraper.calls.Load(); got != 1 {
		t.Fatalf("expected 1 scrape for consecutive gets, got %d", got)
	}
	if !first.FetchedAt.Equal(second.FetchedAt) {
		t.Error("expected the same snapshot before TTL expiry")
	}

	current = base.Add(time.Hour + time.Second)
	third := c.Get(context.Background())
	if got := scraper.calls.Load(); got != 2 {
		t.Fatalf("expected a new scrape after TTL expiry, got %d scrapes", got)
	}
	if third.FetchedAt.Equal(first.FetchedAt) {
		t.Error("expected a replaced snapshot after TTL expiry")
	}
}

func TestRefreshAlwaysReplaces(t *testing.T) {
	scraper := &fakeScraper{fetchedAt: time.Now()}
	c := newTestCache(scraper, nil, time.Hour)

	c.Get(context.Background())
	c.Refresh(context.Background())
	c.Refresh(context.Background())

	if got := scraper.calls.Load(); got != 3 {
		t.Fatalf("expected refresh to scrape regardless of TTL, got %d scrapes", got)
	}
}

func TestStatus(t *testing.T) {
	scraper := &fakeScraper{fetchedAt: time.Now()}
	c := newTestCache(scraper, nil, time.Hour)

	status := c.Status()
	if status.HasAssessments || status.AssessmentCount != 0 {
		t.Fatalf("expected empty status before first get, got %+v", status)
	}
	if got := scraper.calls.Load(); got != 0 {
		t.Fatalf("status must not trigger a scrape, got %d", got)
	}

	c.Get(context.Background())
	status = c.Status()
	if !status.HasAssessments || status.AssessmentCount != 2 {
		t.Fatalf("unexpected status after get: %+v", status)
	}
}

func TestConcurrentColdGetsScrapeOnce(t *testing.T) {
	scraper := &fakeScraper{fetchedAt: time.Now(), delay: 50 * time.Millisecond}
	c := newTestCache(scraper, nil, time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			snap := c.Get(context.Background())
			if len(snap.Assessments) == 0 {
				t.Error("got empty snapshot")
			}
		}()
	}
	wg.Wait()

	if got := scraper.calls.Load(); got != 1 {
		t.Fatalf("expected single-flight scrape, got %d", got)
	}
}

func TestColdStartLoadsPersistedSnapshot(t *testing.T) {
	persisted := domain.Snapshot{
		Assessments: []domain.Assessment{{ID: "9", Title: "Persisted"}},
		FetchedAt:   time.Now(),
	}
	store := &fakeStore{snapshot: &persisted}
	scraper := &fakeScraper{fetchedAt: time.Now()}
	c := newTestCache(scraper, store, time.Hour)

	snap := c.Get(context.Background())
	if got := scraper.calls.Load(); got != 0 {
		t.Fatalf("expected no scrape when a fresh snapshot is persisted, got %d", got)
	}
	if len(snap.Assessments) != 1 || snap.Assessments[0].ID != "9" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestColdStartIgnoresStalePersistedSnapshot(t *testing.T) {
	persisted := domain.Snapshot{
		Assessments: []domain.Assessment{{ID: "9", Title: "Persisted"}},
		FetchedAt:   time.Now().Add(-2 * time.Hour),
	}
	store := &fakeStore{snapshot: &persisted}
	scraper := &fakeScraper{fetchedAt: time.Now()}
	c := newTestCache(scraper, store, time.Hour)

	c.Get(context.Background())
	if got := scraper.calls.Load(); got != 1 {
		t.Fatalf("expected a scrape when the persisted snapshot is stale, got %d", got)
	}
	if store.saves != 1 {
		t.Fatalf("expected the fresh snapshot to be persisted, got %d saves", store.saves)
	}
}
