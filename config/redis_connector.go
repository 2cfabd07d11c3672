package config

import (
	"os"

	"gopkg.in/redis.v5"
)

var RedisClient *redis.Client

func SetupRedis() {
	redisUrl := os.Getenv("REDIS_URL")

	RedisClient = redis.NewClient(&redis.Options{
		Addr: redisUrl,
	})
}
