package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/starford/boreacrutis/internal/apperr"
)

// Redis stores the snapshot as a single string value under the key.
type Redis struct {
	rdb *redis.Client
	key string
}

// NewRedis connects a client with opts. The connection is checked lazily on
// first use; call Ping to fail fast.
func NewRedis(opts *redis.Options, key string) *Redis {
	return &Redis{rdb: redis.NewClient(opts), key: key}
}

// Ping verifies connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if err := r.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("storage: redis ping: %w", err)
	}
	return nil
}

// Load implements Provider.
func (r *Redis) Load(ctx context.Context) ([]byte, error) {
	data, err := r.rdb.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("storage: redis %s: %w", r.key, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: redis load: %w", err)
	}
	return data, nil
}

// Save implements Provider.
func (r *Redis) Save(ctx context.Context, data []byte) error {
	if err := r.rdb.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("storage: redis save: %w", err)
	}
	return nil
}

// Close implements Provider.
func (r *Redis) Close() error { return r.rdb.Close() }
