package middleware

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore backs the rate-limit counters with a shared Redis instance so
// multiple replicas count against the same window. INCR is atomic per key,
// which gives the required increment-and-compare semantics without a lock.
type RedisStore struct {
	client *redis.Client
	prefix string
	limit  int
	window time.Duration
}

func NewRedisStore(client *redis.Client, prefix string, limit int, window time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

func (s *RedisStore) Check(ctx context.Context, key string) (bool, int, error) {
	counterKey := s.prefix + ":" + key

	count, err := s.client.Incr(ctx, counterKey).Result()
	if err != nil {
		return false, 0, err
	}
	if count == 1 {
		// First hit opens the window.
		if err := s.client.Expire(ctx, counterKey, s.window).Err(); err != nil {
			return false, 0, err
		}
	}

	if count > int64(s.limit) {
		return false, 0, nil
	}
	return true, s.limit - int(count), nil
}
