package prefs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RedisStore keeps each visitor's preferences in one hash, "prefs:<visitor>".
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore returns a store whose hashes expire ttl after the last write.
// A zero ttl keeps them forever, like local storage.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func hashKey(visitor string) string {
	return "prefs:" + visitor
}

func (s *RedisStore) Get(ctx context.Context, visitor string, key Key) (string, bool, error) {
	if _, ok := allowed[key]; !ok {
		return "", false, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	v, err := s.rdb.HGet(ctx, hashKey(visitor), string(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		log.Error().Err(err).Str("visitor", visitor).Str("key", string(key)).Msg("failed to read preference")
		return "", false, err
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, visitor string, key Key, value string) error {
	if err := Validate(key, value); err != nil {
		return err
	}
	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, hashKey(visitor), string(key), value)
	if s.ttl > 0 {
		pipe.Expire(ctx, hashKey(visitor), s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		log.Error().Err(err).Str("visitor", visitor).Str("key", string(key)).Msg("failed to save preference")
		return err
	}
	return nil
}
