package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const processingPlaceholder = "processing"

// IdempotencyStore implements usecase.IdempotencyStore using Redis. Movement
// recording endpoints use it so a retried request does not register the
// same expense twice.
type IdempotencyStore struct {
	client *redis.Client
	prefix string
}

func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{
		client: client,
		prefix: "idempotency:",
	}
}

// CheckAndSet returns the stored response when the key is already known.
// Otherwise it claims the key with a processing placeholder so concurrent
// retries of the same request observe each other.
func (s *IdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	fullKey := s.prefix + key

	existing, err := s.client.Get(ctx, fullKey).Bytes()
	switch {
	case err == nil:
		return true, existing, nil
	case !errors.Is(err, redis.Nil):
		return false, nil, err
	}

	if response != nil {
		if err := s.client.Set(ctx, fullKey, response, ttl).Err(); err != nil {
			return false, nil, err
		}
		return false, nil, nil
	}

	claimed, err := s.client.SetNX(ctx, fullKey, processingPlaceholder, ttl).Result()
	if err != nil {
		return false, nil, err
	}
	if !claimed {
		// A concurrent request claimed the key between Get and SetNX.
		existing, err := s.client.Get(ctx, fullKey).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return false, nil, err
		}
		return true, existing, nil
	}

	return false, nil, nil
}

// Update stores the final response under an already claimed key.
func (s *IdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return s.client.Set(ctx, s.prefix+key, response, ttl).Err()
}
