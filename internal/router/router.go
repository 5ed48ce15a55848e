// Package router wires HTTP routes to their handlers.  Routes are grouped
// by concern so callers can attach different middleware to catalog reads
// (cacheable) and cart validation (never cached).
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/ticket-selector/internal/handler"
)

// RegisterRoutes registers routes that carry no handler dependencies.
// Currently that is only the health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterCatalog registers the read-only catalog endpoints under
// /v1/events.  Any middleware passed in (e.g. the redis response cache)
// applies to the whole group.
func RegisterCatalog(e *echo.Echo, h *handler.EventHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1/events", mw...)
	g.GET("/:id", h.GetEvent)
	g.GET("/:id/tickets", h.GetTickets)
	g.GET("/:id/addons", h.GetAddOns)
}

// RegisterCart registers the cart validation endpoint.  Validation results
// depend on the request body, so this route is never cached.
func RegisterCart(e *echo.Echo, h *handler.CartHandler, mw ...echo.MiddlewareFunc) {
	e.POST("/v1/events/:id/validate", h.ValidateCart, mw...)
}
