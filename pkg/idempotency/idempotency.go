// Package idempotency remembers the result of requests carrying an
// Idempotency-Key so that client retries do not repeat side effects.
package idempotency

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const Header = "Idempotency-Key"

const pending = "\x00pending"

var ErrInProgress = errors.New("request with this idempotency key is in progress")

// FromRequest returns the trimmed Idempotency-Key header value.
func FromRequest(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(Header))
}

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Reserve claims key for the caller. When the key was already completed the
// stored result is returned and claimed is false.
func (s *RedisStore) Reserve(ctx context.Context, scope, key string) (result string, claimed bool, err error) {
	k := cacheKey(scope, key)

	ok, err := s.client.SetNX(ctx, k, pending, s.ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("redis setnx failed: %w", err)
	}
	if ok {
		return "", true, nil
	}

	val, err := s.client.Get(ctx, k).Result()
	if errors.Is(err, redis.Nil) {
		// истек между SETNX и GET
		return s.Reserve(ctx, scope, key)
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get failed: %w", err)
	}
	if val == pending {
		return "", false, ErrInProgress
	}
	return val, false, nil
}

// Complete stores the result for a claimed key.
func (s *RedisStore) Complete(ctx context.Context, scope, key, result string) error {
	if err := s.client.Set(ctx, cacheKey(scope, key), result, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Release forgets a claimed key so the request can be retried.
func (s *RedisStore) Release(ctx context.Context, scope, key string) error {
	if err := s.client.Del(ctx, cacheKey(scope, key)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func cacheKey(scope, key string) string {
	return fmt.Sprintf("idempotency:%s:%s", scope, key)
}
