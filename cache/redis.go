package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/polingo/polingo"
)

// Redis is a Redis-backed catalog cache for sharing loaded catalogs across
// processes. Catalogs are stored as JSON under "{prefix}{locale}:{domain}".
//
// The polingo.Cache contract is no-throw, so Redis fails open: any backend
// error silently degrades to an in-process memory fallback and lookups keep
// working, just without cross-process sharing.
type Redis struct {
	client   *redis.Client
	ttl      time.Duration
	prefix   string
	fallback *Memory
}

// RedisConfig holds configuration for the Redis cache.
type RedisConfig struct {
	URL    string        // Redis connection URL (e.g., "redis://localhost:6379")
	TTL    time.Duration // Entry lifetime (0 = no expiration)
	Prefix string        // Prefix for all keys (default: "polingo:")
}

// NewRedis creates a Redis cache with the given configuration.
func NewRedis(cfg RedisConfig) (*Redis, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewRedisFromClient(client, cfg.TTL, cfg.Prefix), nil
}

// NewRedisFromClient creates a Redis cache from an existing client.
func NewRedisFromClient(client *redis.Client, ttl time.Duration, prefix string) *Redis {
	if prefix == "" {
		prefix = "polingo:"
	}

	if ttl < 0 {
		ttl = 0
	}

	return &Redis{
		client:   client,
		ttl:      ttl,
		prefix:   prefix,
		fallback: NewMemory(0),
	}
}

// Get retrieves a catalog from Redis, consulting the in-process fallback
// when Redis misses or misbehaves.
func (c *Redis) Get(key string) (*polingo.Catalog, bool) {
	ctx := context.Background()

	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		// redis.Nil is an ordinary miss; anything else degrades silently.
		return c.fallback.Get(key)
	}

	var catalog polingo.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		// A corrupt payload is unusable; drop it and treat as a miss.
		c.client.Del(ctx, c.prefix+key)
		return c.fallback.Get(key)
	}

	return &catalog, true
}

// Set stores a catalog in Redis, falling back to process memory when the
// write cannot be completed.
func (c *Redis) Set(key string, catalog *polingo.Catalog) {
	data, err := json.Marshal(catalog)
	if err != nil {
		c.fallback.Set(key, catalog)
		return
	}

	ctx := context.Background()
	if err := c.client.Set(ctx, c.prefix+key, data, c.ttl).Err(); err != nil {
		c.fallback.Set(key, catalog)
	}
}

// Has reports whether key is present in Redis or the fallback.
func (c *Redis) Has(key string) bool {
	ctx := context.Background()

	n, err := c.client.Exists(ctx, c.prefix+key).Result()
	if err != nil {
		return c.fallback.Has(key)
	}

	if n > 0 {
		return true
	}

	return c.fallback.Has(key)
}

// Clear removes every key under the configured prefix and empties the
// fallback. Backend errors are swallowed per the no-throw contract.
func (c *Redis) Clear() {
	ctx := context.Background()

	keys, err := c.client.Keys(ctx, c.prefix+"*").Result()
	if err == nil && len(keys) > 0 {
		c.client.Del(ctx, keys...)
	}

	c.fallback.Clear()
}

// Close closes the Redis connection.
func (c *Redis) Close() error {
	return c.client.Close()
}

// Ping tests the Redis connection.
func (c *Redis) Ping() error {
	return c.client.Ping(context.Background()).Err()
}

// Verify Redis implements TranslationCache
var _ TranslationCache = (*Redis)(nil)
