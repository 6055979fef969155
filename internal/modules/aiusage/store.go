package aiusage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	usageKeyPrefix = "aiusage:%s:%s"
	// Counters expire a day after their window closes.
	keyTTL = 48 * time.Hour
)

// Store keeps per-client daily generation counters in Redis.
type Store struct {
	redis *redis.Client
}

// NewStore returns a Store backed by the given Redis client.
func NewStore(redis *redis.Client) *Store {
	return &Store{redis: redis}
}

// Increment bumps uid's counter for day and returns the new value.
// The expiry is refreshed on every call.
func (s *Store) Increment(ctx context.Context, uid string, day time.Time) (int64, error) {
	key := usageKey(uid, day)
	pipe := s.redis.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, keyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// Used returns uid's counter for day, zero when absent.
func (s *Store) Used(ctx context.Context, uid string, day time.Time) (int64, error) {
	n, err := s.redis.Get(ctx, usageKey(uid, day)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return n, err
}

func usageKey(uid string, day time.Time) string {
	return fmt.Sprintf(usageKeyPrefix, uid, day.UTC().Format("2006-01-02"))
}
