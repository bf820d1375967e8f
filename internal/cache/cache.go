package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrDisabled is returned by every call on a nil *Client.
var ErrDisabled = errors.New("cache disabled")

// Client wraps redis.Client with namespaced keys. Redis failures are
// returned to the caller; a missing key is not a failure.
type Client struct {
	client *redis.Client
	prefix string
}

// New creates a new Redis client whose keys are namespaced under prefix.
func New(addr, password string, db int, prefix string) *Client {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Client{client: redis.NewClient(opts), prefix: prefix}
}

func (c *Client) key(k string) string {
	return c.prefix + k
}

// Ping reports whether redis is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return ErrDisabled
	}
	return c.client.Ping(ctx).Err()
}

// Take atomically reads and deletes key. A missing key yields nil, nil.
func (c *Client) Take(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, ErrDisabled
	}
	res, err := c.client.GetDel(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis getdel: %w", err)
	}
	return res, nil
}

// Set stores value with TTL.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return ErrDisabled
	}
	if err := c.client.Set(ctx, c.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
