package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	sequenceKeyPrefix = "quote:seq:"
	sequenceKeyTTL    = 48 * time.Hour
)

// RedisSequence backs quote numbering with Redis INCR so numbers stay
// unique across instances. Daily keys expire after sequenceKeyTTL.
type RedisSequence struct {
	client *redis.Client
}

func NewRedisSequence(client *redis.Client) *RedisSequence {
	return &RedisSequence{client: client}
}

func (r *RedisSequence) Next(ctx context.Context, key string) (int64, error) {
	fullKey := sequenceKeyPrefix + key

	n, err := r.client.Incr(ctx, fullKey).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		r.client.Expire(ctx, fullKey, sequenceKeyTTL)
	}
	return n, nil
}
