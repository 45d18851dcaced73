package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofrs/uuid"
)

// RateLimiterRedis implements a sliding-window counter on a ZSET per
// caller: entries are scored by timestamp, everything older than the
// window is trimmed, and the cardinality decides the verdict.
type RateLimiterRedis struct {
	Client *redis.Client
}

func NewRateLimiterRedis(client *redis.Client) *RateLimiterRedis {
	return &RateLimiterRedis{Client: client}
}

func (r *RateLimiterRedis) Allow(ctx context.Context, callerID string, limit int, window time.Duration) (bool, error) {
	key := "ratelimit:" + callerID
	now := time.Now()
	cutoff := now.Add(-window).UnixNano()

	if err := r.Client.ZRemRangeByScore(ctx, key, "-inf", fmt.Sprintf("%d", cutoff)).Err(); err != nil {
		return false, err
	}

	count, err := r.Client.ZCard(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count >= int64(limit) {
		return false, nil
	}

	z := &redis.Z{
		Score:  float64(now.UnixNano()),
		Member: uuid.Must(uuid.NewV4()).String(),
	}
	if err := r.Client.ZAdd(ctx, key, z).Err(); err != nil {
		return false, err
	}
	if err := r.Client.Expire(ctx, key, window).Err(); err != nil {
		return false, err
	}

	return true, nil
}
