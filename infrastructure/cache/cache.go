package cache

import (
	"context"

	"mytube-channels/infrastructure/logger"

	"github.com/redis/go-redis/v9"
)

// NewCache connects a Redis client. A ping failure is reported but the client
// is still returned; the service degrades to store-only reads.
func NewCache(ctx context.Context, addr, username, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis ping failed")
		return client, err
	}
	return client, nil
}
