package config

import "time"

// CacheConfig controls the redis response cache on catalog reads.  The
// catalog is immutable for the lifetime of the process, so entries only
// need a TTL to bound memory, not for correctness.
type CacheConfig struct {
	Enabled      bool          // master switch; also off when redis is unavailable
	TTL          time.Duration // lifetime of a cached response
	Prefix       string        // key namespace in redis
	MaxBodyBytes int           // responses larger than this are not cached
}

// LoadCacheConfig reads cache settings from the environment, with defaults
// suitable for the small catalog payloads this service produces.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      envBool("CACHE_ENABLED", true),
		TTL:          envDur("CACHE_TTL", 5*time.Minute),
		Prefix:       getenv("CACHE_PREFIX", "catalog"),
		MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
	}
}
