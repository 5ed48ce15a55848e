package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/ticket-selector/internal/cart"
	"github.com/iliyamo/ticket-selector/internal/catalog"
	"github.com/iliyamo/ticket-selector/internal/config"
	"github.com/iliyamo/ticket-selector/internal/database"
	"github.com/iliyamo/ticket-selector/internal/handler"
	"github.com/iliyamo/ticket-selector/internal/middleware"
	"github.com/iliyamo/ticket-selector/internal/queue"
	"github.com/iliyamo/ticket-selector/internal/router"
	queue_publisher "github.com/iliyamo/ticket-selector/internal/service"
)

func main() {
	cfg := config.Load()

	store, err := loadCatalog(cfg)
	if err != nil {
		log.Fatalf("catalog load failed: %v", err)
	}

	// Redis is optional; a nil client disables caching and rate limiting.
	rdb := config.LoadRedisConfig().NewClient()
	if rdb == nil {
		log.Printf("redis unavailable, response cache and rate limiting disabled")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS()) // the widget is embedded on arbitrary origins
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterCatalog(e, handler.NewEventHandler(store),
		middleware.NewCatalogCache(config.LoadCacheConfig(), rdb))

	cartHandler := handler.NewCartHandler(cart.NewValidator(store))
	if cfg.QueueEnabled {
		cartHandler.Audit = queue_publisher.PublishCartValidated
		go func() {
			if err := queue.StartValidationConsumer(); err != nil {
				log.Printf("validation consumer stopped: %v", err)
			}
		}()
	}
	router.RegisterCart(e, cartHandler)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, catalog=%s)", addr, cfg.Env, cfg.CatalogSource)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// loadCatalog performs the explicit startup load: events come from MySQL or
// a JSON fixture and are frozen into an immutable in-memory store.  The
// database connection, when used, is closed as soon as the load completes.
func loadCatalog(cfg config.Config) (*catalog.Store, error) {
	if cfg.CatalogSource == "mysql" {
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			return nil, err
		}
		defer db.Close()

		events, err := catalog.LoadMySQL(context.Background(), db)
		if err != nil {
			return nil, err
		}
		return catalog.NewStore(events)
	}

	events, err := catalog.LoadFixture(cfg.CatalogFixture)
	if err != nil {
		return nil, err
	}
	return catalog.NewStore(events)
}
