package configs

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis connects to Redis for inquiry notifications. Redis is
// optional: when REDISURL is unset the service runs without publishing.
func ConnectRedis() (*redis.Client, error) {
	redisURL := EnvRedisURL()
	if redisURL == "" {
		return nil, nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}
