package cache

import (
	"context"
	"time"

	"portalchat/internal/errs"

	"github.com/redis/go-redis/v9"
)

const ErrMiss = errs.Error("cache: miss")

// RedisCache is the read-through cache in front of identity
// resolution. Losing it only costs directory lookups, so every
// operation degrades to a plain miss on transport errors upstream.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client: client,
	}
}

func (rc *RedisCache) Get(ctx context.Context, key string) (string, error) {
	result, err := rc.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrMiss
	}
	if err != nil {
		return "", err
	}
	return result, nil
}

func (rc *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return rc.client.Set(ctx, key, value, ttl).Err()
}

func (rc *RedisCache) Ping(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}

func (rc *RedisCache) Close() error {
	return rc.client.Close()
}
