package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hartlaw/hartlaw/internal/domain/setting"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

const (
	counterKeyPrefix = "hartlaw:counter:"
	// DefaultCounterTTL outlives a daily sequence with room for clock skew.
	DefaultCounterTTL = 72 * time.Hour
)

// RedisCounter implements setting.Counter with INCR, which is atomic across
// every process sharing the Redis instance.
type RedisCounter struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

// NewRedisCounter creates a counter whose keys expire ttl after first use.
// A zero ttl keeps keys forever.
func NewRedisCounter(client *redis.Client, ttl time.Duration, logger logger.Interface) *RedisCounter {
	return &RedisCounter{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

var _ setting.Counter = (*RedisCounter)(nil)

func (c *RedisCounter) Increment(ctx context.Context, key string) (int64, error) {
	redisKey := counterKeyPrefix + key

	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	if c.ttl > 0 {
		pipe.ExpireNX(ctx, redisKey, c.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Errorw("failed to increment redis counter", "key", key, "error", err)
		return 0, fmt.Errorf("failed to increment counter %s: %w", key, err)
	}

	return incr.Val(), nil
}
