package database

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient initializes a Redis client and verifies the connection.
// Persistence is best-effort for this service, so the caller decides what to
// do when Redis is unreachable (it falls back to an in-memory store).
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return client, nil
}
