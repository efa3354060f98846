// Package cache provides the Redis-backed account lookup cache.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Pool sizing mirrors the database pool: account reads are the only
// consumers, each issuing one or two pipelined commands.
const (
	redisPoolSize        = 10
	redisMinIdleConns    = 2
	redisPoolTimeout     = 4 * time.Second
	redisConnMaxIdleTime = 5 * time.Minute
)

// Cache wraps the Redis client used for account caching.
type Cache struct {
	client *redis.Client
}

// New connects to Redis and verifies the connection before returning.
func New(ctx context.Context, redisURL string) (*Cache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse Redis URL: %w", err)
	}

	opt.PoolSize = redisPoolSize
	opt.MinIdleConns = redisMinIdleConns
	opt.PoolTimeout = redisPoolTimeout
	opt.ConnMaxIdleTime = redisConnMaxIdleTime

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping Redis: %w", err)
	}

	return &Cache{client: client}, nil
}

// Ping checks Redis connectivity. Used by the readiness probe.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}
