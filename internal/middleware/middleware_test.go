package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/ticket-selector/internal/config"
)

// Both middleware must degrade to pass-through when redis is unavailable:
// a nil client means no caching and no throttling, never a broken API.

func serve(t *testing.T, mw echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.GET("/v1/events/:id", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"id": c.Param("id")})
	}, mw)

	req := httptest.NewRequest(http.MethodGet, "/v1/events/e1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCatalogCachePassThroughWithoutRedis(t *testing.T) {
	mw := NewCatalogCache(config.CacheConfig{Enabled: true, TTL: time.Minute}, nil)
	rec := serve(t, mw)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("X-Cache"); got != "" {
		t.Errorf("X-Cache = %q, want unset when cache is disabled", got)
	}
}

func TestCatalogCachePassThroughWhenDisabled(t *testing.T) {
	mw := NewCatalogCache(config.CacheConfig{Enabled: false}, nil)
	if rec := serve(t, mw); rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestTokenBucketPassThroughWithoutRedis(t *testing.T) {
	mw := NewTokenBucket(config.RateLimitConfig{Enabled: true, Capacity: 1}, nil)
	for i := 0; i < 5; i++ {
		if rec := serve(t, mw); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i, rec.Code)
		}
	}
}

func TestCacheKeyDistinguishesRoutesAndIDs(t *testing.T) {
	e := echo.New()
	keys := map[string]string{}
	h := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	e.GET("/v1/events/:id", func(c echo.Context) error {
		keys["event:"+c.Param("id")] = cacheKey("p", c)
		return h(c)
	})
	e.GET("/v1/events/:id/tickets", func(c echo.Context) error {
		keys["tickets:"+c.Param("id")] = cacheKey("p", c)
		return h(c)
	})

	for _, path := range []string{"/v1/events/a", "/v1/events/b", "/v1/events/a/tickets"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		e.ServeHTTP(httptest.NewRecorder(), req)
	}

	seen := map[string]bool{}
	for name, k := range keys {
		if seen[k] {
			t.Errorf("duplicate cache key for %s", name)
		}
		seen[k] = true
	}
	if len(keys) != 3 {
		t.Fatalf("expected 3 keys, got %d", len(keys))
	}
}
