package config

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient is a global Redis client instance; nil when Redis is not configured
// or not reachable.
var RedisClient *redis.Client

// InitRedis connects to REDIS_ADDR and keeps the client only if it answers a ping.
func InitRedis(cfg *Config) bool {
	if cfg.RedisAddr == "" {
		RedisClient = nil
		return false
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		RedisClient = nil
		return false
	}
	RedisClient = client
	return true
}
