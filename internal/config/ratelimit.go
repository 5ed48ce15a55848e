package config

import "time"

// RateLimitConfig controls the redis token-bucket rate limiter.  Buckets
// are keyed per client IP and route; the limiter fails open on redis
// errors so a cache outage never takes the API down with it.
type RateLimitConfig struct {
	Enabled        bool          // master switch; also off when redis is unavailable
	Capacity       int           // bucket size (burst)
	RefillTokens   int           // tokens added per interval
	RefillInterval time.Duration // refill cadence
	TTL            time.Duration // idle bucket expiry in redis
	Prefix         string        // key namespace in redis
}

// LoadRateLimitConfig reads rate-limit settings from the environment.  The
// defaults allow 60 requests with one token refilled per second.
func LoadRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Enabled:        envBool("RATE_LIMIT_ENABLED", true),
		Capacity:       envInt("RATE_LIMIT_CAPACITY", 60),
		RefillTokens:   envInt("RATE_LIMIT_REFILL_TOKENS", 1),
		RefillInterval: envDur("RATE_LIMIT_REFILL_INTERVAL", time.Second),
		TTL:            envDur("RATE_LIMIT_TTL", 10*time.Minute),
		Prefix:         getenv("RATE_LIMIT_PREFIX", "rl"),
	}
}
