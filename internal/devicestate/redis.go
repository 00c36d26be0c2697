package devicestate

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"kamakpos/m/internal/core/errx"
)

const redisKeyPrefix = "pos:device:"

// RedisStore keeps each namespace in one hash. Every write refreshes the
// hash TTL so idle sessions expire on their own.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) key(namespace string) string {
	return redisKeyPrefix + namespace
}

func (s *RedisStore) Get(ctx context.Context, namespace, key string) (string, error) {
	value, err := s.client.HGet(ctx, s.key(namespace), key).Result()
	if err != nil {
		return "", errx.WrapRedis(err)
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, namespace, key, value string) error {
	hashKey := s.key(namespace)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, hashKey, key, value)
		if s.ttl > 0 {
			pipe.Expire(ctx, hashKey, s.ttl)
		}
		return nil
	})
	return errx.WrapRedis(err)
}

func (s *RedisStore) Delete(ctx context.Context, namespace string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return errx.WrapRedis(s.client.HDel(ctx, s.key(namespace), keys...).Err())
}

func (s *RedisStore) Clear(ctx context.Context, namespace string) error {
	return errx.WrapRedis(s.client.Del(ctx, s.key(namespace)).Err())
}
