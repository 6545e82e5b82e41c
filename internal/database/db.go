package database

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Sari-Dot/Myquiz/internal/config"
)

// RedisClient is the global Redis client backing the key-value store
var RedisClient *redis.Client

// InitRedis initializes the Redis connection
func InitRedis(cfg config.Config) {
	redisAddr := fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort)

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// Test Redis connection with retries
	ctx := context.Background()
	maxRetries := 10
	var err error
	for i := 1; i <= maxRetries; i++ {
		err = RedisClient.Ping(ctx).Err()
		if err == nil {
			break
		}
		slog.Info("Waiting for Redis...", "attempt", i, "max", maxRetries)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		slog.Error("Failed to connect to Redis", "attempts", maxRetries, "err", err)
		os.Exit(1)
	}

	slog.Info("Successfully connected to Redis")
}
