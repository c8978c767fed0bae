package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	err := client.Ping(ctx).Err()
	if err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisCounter_Increment(t *testing.T) {
	client := setupTestRedis(t)
	counter := NewRedisCounter(client, time.Hour, logger.NewNopLogger())
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := counter.Increment(ctx, "ticket_counter_20260314")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	ttl, err := client.TTL(ctx, counterKeyPrefix+"ticket_counter_20260314").Result()
	require.NoError(t, err)
	assert.True(t, ttl > 0 && ttl <= time.Hour)
}

func TestRedisCounter_ConcurrentIncrementsAreUnique(t *testing.T) {
	client := setupTestRedis(t)
	counter := NewRedisCounter(client, 0, logger.NewNopLogger())
	ctx := context.Background()

	const workers = 50
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[int64]bool)
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := counter.Increment(ctx, "ticket_counter_20260314")
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			seen[v] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers)
}
