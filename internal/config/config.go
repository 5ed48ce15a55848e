// Package config loads application configuration from environment
// variables.  A local .env file is honoured when present (godotenv), which
// keeps development setups out of the shell profile.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the core runtime configuration.  Redis, cache and rate-limit
// settings live in their own loaders in this package because they are
// optional subsystems with independent defaults.
type Config struct {
	Env            string // application environment (e.g. "dev", "prod")
	Port           string // HTTP port to listen on
	CatalogSource  string // "fixture" (default) or "mysql"
	CatalogFixture string // optional path to a fixture file; empty = embedded default
	DBUser         string // MySQL username (required when CatalogSource is "mysql")
	DBPass         string // MySQL password (optional)
	DBHost         string // MySQL host
	DBPort         string // MySQL port
	DBName         string // MySQL database name
	QueueEnabled   bool   // publish cart.validated audit events to RabbitMQ
}

// Load reads configuration from the environment.  Database variables are
// only required when the catalog is loaded from MySQL; everything else has
// a default so the service starts with no configuration at all, serving the
// embedded fixture.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Env:            getenv("APP_ENV", "dev"),
		Port:           getenv("APP_PORT", "8080"),
		CatalogSource:  strings.ToLower(getenv("CATALOG_SOURCE", "fixture")),
		CatalogFixture: os.Getenv("CATALOG_FIXTURE"),
		QueueEnabled:   envBool("QUEUE_ENABLED", false),
	}
	switch cfg.CatalogSource {
	case "fixture":
	case "mysql":
		cfg.DBUser = must("DB_USER")
		cfg.DBPass = os.Getenv("DB_PASS")
		cfg.DBHost = must("DB_HOST")
		cfg.DBPort = must("DB_PORT")
		cfg.DBName = must("DB_NAME")
	default:
		log.Fatalf("invalid CATALOG_SOURCE: %q (want \"fixture\" or \"mysql\")", cfg.CatalogSource)
	}
	return cfg
}

// must retrieves a required environment variable.  If the variable is unset
// or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// getenv returns the value of an environment variable or a default when it
// is unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return strings.EqualFold(v, "true") || v == "1"
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envDur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
