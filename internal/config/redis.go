package config

// Redis backs the optional response cache and rate limiter.  When the
// server is unreachable at startup both subsystems degrade gracefully by
// running with a nil client, which the middleware treat as "disabled".

import (
	"context"
	"crypto/tls"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds connection parameters for Redis.
type RedisConfig struct {
	Addr     string // host:port of the Redis server
	Password string // optional password
	DB       int    // database number
	TLS      bool   // dial with TLS when true
}

// LoadRedisConfig reads Redis settings from the environment.  REDIS_HOST
// and REDIS_PORT take precedence over the REDIS_ADDR shorthand.
func LoadRedisConfig() RedisConfig {
	addr := getenv("REDIS_ADDR", "localhost:6379")
	if host, port := os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT"); host != "" && port != "" {
		addr = host + ":" + port
	}
	return RedisConfig{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       envInt("REDIS_DB", 0),
		TLS:      envBool("REDIS_TLS", false),
	}
}

// NewClient connects to Redis and verifies the connection with a short
// ping.  It returns nil when the server cannot be reached; callers must
// treat a nil client as "caching and rate limiting disabled".
func (c RedisConfig) NewClient() *redis.Client {
	opts := &redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	}
	if c.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil
	}
	return client
}
