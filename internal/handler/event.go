// Package handler exposes the HTTP handlers of the ticket selector API.
// All endpoints are public; the widget is served to unauthenticated
// visitors.  Handlers translate catalog sentinel errors into status codes
// and otherwise return catalog data as-is.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/ticket-selector/internal/catalog"
)

// EventHandler serves catalog reads: the full event, its tickets and its
// add-ons.  All three derive from the same event lookup, so they share the
// same 404 behaviour for unknown event ids.
type EventHandler struct {
	Store *catalog.Store
}

// NewEventHandler constructs an EventHandler.  The store must be non-nil.
func NewEventHandler(store *catalog.Store) *EventHandler {
	if store == nil {
		panic("nil catalog store passed to NewEventHandler")
	}
	return &EventHandler{Store: store}
}

// GetEvent handles GET /v1/events/:id.  It returns the event with its
// ticket types and add-ons, or 404 when the id is unknown.
func (h *EventHandler) GetEvent(c echo.Context) error {
	ev, err := h.Store.GetEvent(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog error"})
	}
	return c.JSON(http.StatusOK, ev)
}

// GetTickets handles GET /v1/events/:id/tickets.
func (h *EventHandler) GetTickets(c echo.Context) error {
	tickets, err := h.Store.GetTickets(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"tickets": tickets})
}

// GetAddOns handles GET /v1/events/:id/addons.
func (h *EventHandler) GetAddOns(c echo.Context) error {
	addons, err := h.Store.GetAddOns(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"addons": addons})
}
