package utils

import (
	"context"
	"net"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

// GetRedis returns a singleton Redis client built from the environment.
// The client is best-effort: callers treat a dead Redis as a cache miss.
func GetRedis() *redis.Client {
	redisOnce.Do(func() {
		host := os.Getenv("REDIS_HOST")
		if host == "" {
			host = "localhost"
		}
		port := 6379
		if p, err := strconv.Atoi(os.Getenv("REDIS_PORT")); err == nil && p > 0 {
			port = p
		}
		db := 0
		if d, err := strconv.Atoi(os.Getenv("REDIS_DB")); err == nil {
			db = d
		}
		redisClient = redis.NewClient(&redis.Options{
			Addr:         net.JoinHostPort(host, strconv.Itoa(port)),
			Password:     os.Getenv("REDIS_PASSWORD"),
			DB:           db,
			DialTimeout:  3 * time.Second,
			ReadTimeout:  2 * time.Second,
			WriteTimeout: 2 * time.Second,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = redisClient.Ping(ctx).Err()
	})
	return redisClient
}
