package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// InitRedis initializes the Redis client
func InitRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://redis:6379" // Default Redis address for Docker
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	RedisClient = redis.NewClient(opt)

	// Test the connection
	ctx := context.Background()
	_, err = RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return nil
}

// geocodeCacheTTL is deliberately long: Nominatim's usage policy asks
// clients to cache results, and addresses for a fixed coordinate rarely
// change.
const geocodeCacheTTL = 24 * time.Hour

// RedisGeocodeCache caches reverse-geocoded addresses keyed by rounded
// coordinates. Implements the geocode package's Cache interface.
type RedisGeocodeCache struct {
	client *redis.Client
}

func NewRedisGeocodeCache(client *redis.Client) *RedisGeocodeCache {
	return &RedisGeocodeCache{client: client}
}

func geocodeKey(lat, lon float64) string {
	return fmt.Sprintf("geocode:%.6f:%.6f", lat, lon)
}

// GetAddress retrieves a cached address for the coordinates, if any.
func (c *RedisGeocodeCache) GetAddress(ctx context.Context, lat, lon float64) (string, bool) {
	address, err := c.client.Get(ctx, geocodeKey(lat, lon)).Result()
	if err != nil {
		return "", false
	}
	return address, true
}

// SetAddress stores an address for the coordinates. Cache failures are
// ignored; the cache is an optimization, not a source of truth.
func (c *RedisGeocodeCache) SetAddress(ctx context.Context, lat, lon float64, address string) {
	c.client.Set(ctx, geocodeKey(lat, lon), address, geocodeCacheTTL)
}
