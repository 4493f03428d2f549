package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/atlasledger/go-bank-recon/internal/common/xlog"

	"github.com/redis/go-redis/v9"
)

type redisClient[T any] struct {
	redis *redis.Client
}

func NewRedisClient[T any](redis *redis.Client) Client[T] {
	return &redisClient[T]{redis: redis}
}

func (r redisClient[T]) Get(ctx context.Context, key string) (result T, err error) {
	val, err := r.redis.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return result, ErrNotExists
		}
		return result, err
	}

	if err = json.Unmarshal([]byte(val), &result); err != nil {
		return result, err
	}

	return result, nil
}

func (r redisClient[T]) Set(ctx context.Context, key string, object T, ttl time.Duration) error {
	val, err := json.Marshal(object)
	if err != nil {
		return err
	}

	return r.redis.Set(ctx, key, val, ttl).Err()
}

// GetOrSet serves from redis when it can. Redis trouble degrades to a
// direct callback call, it never blocks the caller.
func (r redisClient[T]) GetOrSet(ctx context.Context, opts GetOrSetOpts[T]) (result T, err error) {
	if opts.Callback == nil {
		return result, ErrCallbackNotProvided
	}

	obj, err := r.Get(ctx, opts.Key)
	if err == nil {
		return obj, nil
	}

	if err != ErrNotExists {
		xlog.Warn(ctx, "[CACHE]", xlog.String("key", opts.Key), xlog.Err(err))
	}

	obj, err = opts.Callback()
	if err != nil {
		return result, err
	}

	if setErr := r.Set(ctx, opts.Key, obj, opts.TTL); setErr != nil {
		xlog.Warn(ctx, "[CACHE]", xlog.String("key", opts.Key), xlog.Err(setErr))
	}

	return obj, nil
}
