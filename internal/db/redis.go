package db

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/luminasalon/booking-api/internal/config"
)

// NewRedis returns nil when no REDIS_URL is configured; callers treat a
// nil client as "rate limiting disabled" so local setups run without redis.
func NewRedis(cfg *config.Config) *redis.Client {
	if cfg.RedisURL == "" {
		log.Println("redis not configured, rate limiting disabled")
		return nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}

	return client
}
