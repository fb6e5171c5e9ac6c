package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	// RedisClient is nil when Redis is unreachable; the rate limiter
	// passes requests through in that case.
	RedisClient *redis.Client
	Ctx         = context.Background()
)

func ConnectRedis() {
	// read Redis URL
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		// Default to local Redis for development
		redisURL = "redis://localhost:6379"
		log.Println("⚠️  REDIS_URL not set, using local Redis:", redisURL)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("⚠️  invalid REDIS_URL, rate limiting disabled: %v", err)
		return
	}

	client := redis.NewClient(opt)

	// test connection
	res, err := client.Ping(Ctx).Result()
	if err != nil {
		log.Printf("⚠️  Redis unreachable, rate limiting disabled: %v", err)
		return
	}

	RedisClient = client
	log.Println("✅ Connected to Redis:", res)
}
