package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/user/assessment-finder/internal/domain"
)

const snapshotKey = "assessments:snapshot"

// SnapshotStore persists catalog snapshots in Redis so restarts within the
// cache TTL do not trigger a re-scrape.
type SnapshotStore struct {
	client *redis.Client
}

func NewSnapshotStore(addr string) *SnapshotStore {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	return &SnapshotStore{client: rdb}
}

func (s *SnapshotStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Save stores the snapshot with the given TTL, replacing any previous one.
func (s *SnapshotStore) Save(ctx context.Context, snap domain.Snapshot, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, snapshotKey, payload, ttl).Err()
}

// Load returns the persisted snapshot, or nil when none is stored.
func (s *SnapshotStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	payload, err := s.client.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var snap domain.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
