package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/ticket-selector/internal/cart"
	"github.com/iliyamo/ticket-selector/internal/catalog"
	"github.com/iliyamo/ticket-selector/internal/model"
	"github.com/iliyamo/ticket-selector/internal/queue"
)

// CartHandler validates proposed selections.  Audit, when set, receives a
// CartValidatedEvent after every completed validation; it runs on its own
// goroutine and its errors are ignored, so a broker outage never affects
// the response.
type CartHandler struct {
	Validator *cart.Validator
	Audit     func(context.Context, queue.CartValidatedEvent) error
}

// NewCartHandler constructs a CartHandler without audit publishing.  The
// validator must be non-nil.
func NewCartHandler(v *cart.Validator) *CartHandler {
	if v == nil {
		panic("nil validator passed to NewCartHandler")
	}
	return &CartHandler{Validator: v}
}

// ValidateCart handles POST /v1/events/:id/validate.  The body carries a
// Selection; missing maps are treated as empty.  A failed validation is a
// 200 with valid=false — only an unknown event id (404) or a malformed body
// (400) fails the request itself.
func (h *CartHandler) ValidateCart(c echo.Context) error {
	var sel model.Selection
	if err := c.Bind(&sel); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if sel.Tickets == nil {
		sel.Tickets = map[string]int{}
	}
	if sel.AddOns == nil {
		sel.AddOns = map[string]model.AddOnSelection{}
	}

	eventID := c.Param("id")
	res, err := h.Validator.Validate(c.Request().Context(), eventID, sel)
	if err != nil {
		if errors.Is(err, catalog.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "validation error"})
	}

	if h.Audit != nil {
		evt := queue.CartValidatedEvent{
			EventID:     eventID,
			Valid:       res.Valid,
			Errors:      res.Errors,
			Total:       res.Total.String(),
			TicketCount: len(sel.Tickets),
			AddOnCount:  len(sel.AddOns),
			ValidatedAt: time.Now().UTC().Format(time.RFC3339),
		}
		// Detached from the request context on purpose: the publish may
		// outlive the response.
		go func() { _ = h.Audit(context.Background(), evt) }()
	}

	return c.JSON(http.StatusOK, res)
}
