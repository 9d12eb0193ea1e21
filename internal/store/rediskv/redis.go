// Package rediskv implements the persistence port on Redis. It backs the
// optional remote sync mirror, not the primary local store.
package rediskv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/glassbrowser/glassd/internal/logger"
	"github.com/glassbrowser/glassd/internal/store"
)

// ConnectOptions defines the Redis connection parameters.
type ConnectOptions struct {
	Addr         string        // ex: "localhost:6379"
	User         string        // optional
	Password     string        // optional
	DB           int           // Redis DB number
	DialTimeout  time.Duration // ex: 5s
	ReadTimeout  time.Duration // ex: 3s
	WriteTimeout time.Duration // ex: 3s
}

// KV wraps a Redis client behind the store.KV port.
type KV struct {
	client *redis.Client
}

// New connects to Redis and verifies the connection with a single ping.
// Sync pushes are best effort, so there is no retry loop here; an
// unreachable mirror simply fails the sync cycle.
func New(opts ConnectOptions, log logger.Logger) (*KV, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Username:     opts.User,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  opts.DialTimeout,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), opts.DialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis unavailable at %s: %w", opts.Addr, err)
	}

	log.Info("connected to redis sync mirror", logger.String("addr", opts.Addr))
	return &KV{client: client}, nil
}

// Get retrieves the raw value for a mirrored key.
func (k *KV) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := k.client.Get(ctx, Key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return data, nil
}

// Set stores the raw value for a mirrored key.
func (k *KV) Set(ctx context.Context, key string, value []byte) error {
	if err := k.client.Set(ctx, Key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying client.
func (k *KV) Close() error {
	return k.client.Close()
}
