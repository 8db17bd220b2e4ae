// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"voyago/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient serves quote response caching and other short-lived lookups.
	CacheClient *redis.Client
	// AuthCacheClient holds admin sessions and token hashes, on its own DB
	// so a cache flush never signs anyone out.
	AuthCacheClient *redis.Client
)

// newRedisClient connects to the configured Redis instance on the given
// logical DB and fails fast when it is unreachable.
func newRedisClient(db int, label string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis %s connect: %v", label, err)
	}
	return client
}

// InitCache initializes the general-purpose cache client.
func InitCache() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "cache")
}

// GetCacheClient returns the general-purpose cache client, connecting on
// first use.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitAuthCache initializes the authorization cache client.
func InitAuthCache() {
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB, "auth cache")
}

// GetAuthCacheClient returns the authorization cache client, connecting on
// first use.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}
