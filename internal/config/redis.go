package config

import (
	"context"
	"os"
	"strconv"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// InitRedis connects to Redis and returns the client for injection into
// the rate limiter adapter.
func InitRedis() *redis.Client {
	redisDB, err := strconv.Atoi(os.Getenv("REDIS_DB"))
	if err != nil {
		redisDB = 0
	}

	client := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       redisDB,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		Logger.Fatal("Error connecting to Redis:", zap.Error(err))
	}

	Logger.Info("✅ Connected to Redis")
	return client
}
