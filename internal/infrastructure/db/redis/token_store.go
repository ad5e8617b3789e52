package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore keeps session token slots in Redis.
// Key format: <prefix>:<slot>
type TokenStore struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewTokenStore wraps client. A zero ttl stores tokens without expiry.
func NewTokenStore(client redis.Cmdable, prefix string, ttl time.Duration) *TokenStore {
	return &TokenStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *TokenStore) Load(ctx context.Context, key string) (string, error) {
	tok, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get token: %w", err)
	}
	return tok, nil
}

func (s *TokenStore) Save(ctx context.Context, key, token string) error {
	if err := s.client.Set(ctx, s.key(key), token, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set token: %w", err)
	}
	return nil
}

func (s *TokenStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del token: %w", err)
	}
	return nil
}

func (s *TokenStore) key(slot string) string {
	if s.prefix == "" {
		return slot
	}
	return fmt.Sprintf("%s:%s", s.prefix, slot)
}
