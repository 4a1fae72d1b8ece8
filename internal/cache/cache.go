// Package cache wraps the Redis-backed key-value namespaces used by the
// session engine: the session cache (refresh token -> subject, the source of
// truth for session validity) and the identity cache (user id -> cached
// identity projection, a best-effort read-through optimization).
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mini-x/user-service/internal/config"
	"github.com/mini-x/user-service/internal/logger"
)

// Client is a thin wrapper over one Redis connection. It bounds every
// operation with the configured timeout and normalises driver errors into
// the two-sentinel contract of this package.
type Client struct {
	rdb       *redis.Client
	opTimeout time.Duration
	logger    *logger.Logger
}

// NewClient connects to the cache backend described by cfg and verifies the
// connection with a ping.
//
// A failed ping is returned as an error rather than being fatal here; the
// caller decides whether the namespace is load-bearing (session cache) or an
// optimization (identity cache).
func NewClient(cfg config.Cache, log *logger.Logger) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.OpTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("addr", cfg.Addr).Msg("cache backend ping failed")
		return nil, fmt.Errorf("error connecting cache backend %s: %w", cfg.Addr, err)
	}
	log.Info().Str("addr", cfg.Addr).Int("db", cfg.DB).Msg("connected to cache backend")

	return &Client{
		rdb:       rdb,
		opTimeout: cfg.OpTimeout,
		logger:    log,
	}, nil
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// withTimeout derives the per-operation deadline context. The caller's
// context still applies, so request-scoped cancellation propagates.
func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.opTimeout)
}

// get returns the string value at key, ErrCacheMiss when absent, or
// ErrCacheUnavailable when the backend cannot answer.
func (c *Client) get(ctx context.Context, key string) (string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	value, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}
		return "", fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}

	return value, nil
}

// set stores value at key with the given expiry.
func (c *Client) set(ctx context.Context, key, value string, ttl time.Duration) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}

	return nil
}

// del removes key and reports whether it existed.
func (c *Client) del(ctx context.Context, key string) (bool, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	deleted, err := c.rdb.Del(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}

	return deleted > 0, nil
}

// exists reports whether key is present.
func (c *Client) exists(ctx context.Context, key string) (bool, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	n, err := c.rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}

	return n > 0, nil
}

// ttl returns the remaining lifetime of key. A key without an expiry yields
// a negative duration; an absent key yields ErrCacheMiss.
func (c *Client) ttl(ctx context.Context, key string) (time.Duration, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	remaining, err := c.rdb.TTL(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}

	// redis reports -2 for a missing key and -1 for a key without expiry;
	// the driver passes both through as bare negative durations
	switch remaining {
	case -2:
		return 0, ErrCacheMiss
	case -1:
		return -1, nil
	}

	return remaining, nil
}

// mget returns the values for keys in request order; absent keys come back
// as empty strings.
func (c *Client) mget(ctx context.Context, keys ...string) ([]string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	raw, err := c.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}

	values := make([]string, len(raw))
	for i, v := range raw {
		if s, ok := v.(string); ok {
			values[i] = s
		}
	}

	return values, nil
}
