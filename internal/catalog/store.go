// Package catalog provides read-only access to event data: events, their
// ticket types and their add-ons.  The catalog is loaded once at startup
// (from a JSON fixture or from MySQL) into an immutable in-memory structure;
// there is no process-wide mutable state and no locking, so the store can be
// shared by any number of concurrent requests.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/iliyamo/ticket-selector/internal/model"
)

// ErrEventNotFound indicates that no event with the requested identifier
// exists in the catalog.  Handlers should translate this into an HTTP 404
// response.
var ErrEventNotFound = errors.New("event not found")

// Store serves immutable catalog data.  All retrieval operations derive
// from the same event lookup, so tickets-only and add-ons-only reads share
// the NotFound behaviour of the full event read.
type Store struct {
	events map[string]*model.Event
}

// NewStore builds a Store from a loaded event set.  It returns an error
// when the set violates catalog invariants (duplicate identifiers, negative
// prices, eligibility rules referencing unknown ticket types), so a broken
// fixture or database is rejected at startup rather than at request time.
func NewStore(events []model.Event) (*Store, error) {
	byID := make(map[string]*model.Event, len(events))
	for i := range events {
		ev := &events[i]
		if ev.ID == "" {
			return nil, errors.New("catalog: event with empty id")
		}
		if _, dup := byID[ev.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate event id %q", ev.ID)
		}
		if err := checkEvent(ev); err != nil {
			return nil, err
		}
		byID[ev.ID] = ev
	}
	return &Store{events: byID}, nil
}

// checkEvent verifies the invariants of a single event: unique ticket and
// add-on identifiers, non-negative prices, and eligibility rules that only
// reference ticket types belonging to the same event.
func checkEvent(ev *model.Event) error {
	ticketIDs := make(map[string]struct{}, len(ev.TicketTypes))
	for i := range ev.TicketTypes {
		tt := &ev.TicketTypes[i]
		if tt.ID == "" {
			return fmt.Errorf("catalog: event %q has a ticket type with empty id", ev.ID)
		}
		if _, dup := ticketIDs[tt.ID]; dup {
			return fmt.Errorf("catalog: event %q has duplicate ticket type id %q", ev.ID, tt.ID)
		}
		ticketIDs[tt.ID] = struct{}{}
		if tt.Price.IsNegative() {
			return fmt.Errorf("catalog: ticket type %q of event %q has negative price", tt.ID, ev.ID)
		}
	}
	addonIDs := make(map[string]struct{}, len(ev.AddOns))
	for i := range ev.AddOns {
		ao := &ev.AddOns[i]
		if ao.ID == "" {
			return fmt.Errorf("catalog: event %q has an add-on with empty id", ev.ID)
		}
		if _, dup := addonIDs[ao.ID]; dup {
			return fmt.Errorf("catalog: event %q has duplicate add-on id %q", ev.ID, ao.ID)
		}
		addonIDs[ao.ID] = struct{}{}
		if ao.Price.IsNegative() {
			return fmt.Errorf("catalog: add-on %q of event %q has negative price", ao.ID, ev.ID)
		}
		for _, req := range ao.RequiresTicketTypes {
			if _, ok := ticketIDs[req]; !ok {
				return fmt.Errorf("catalog: add-on %q of event %q requires unknown ticket type %q", ao.ID, ev.ID, req)
			}
		}
		variantIDs := make(map[string]struct{}, len(ao.Variants))
		for _, v := range ao.Variants {
			if v.ID == "" {
				return fmt.Errorf("catalog: add-on %q of event %q has a variant with empty id", ao.ID, ev.ID)
			}
			if _, dup := variantIDs[v.ID]; dup {
				return fmt.Errorf("catalog: add-on %q of event %q has duplicate variant id %q", ao.ID, ev.ID, v.ID)
			}
			variantIDs[v.ID] = struct{}{}
		}
	}
	return nil
}

// GetEvent returns the event with the given identifier together with its
// ticket types and add-ons.  It returns ErrEventNotFound for unknown ids.
// The context parameter keeps the signature uniform with other data access
// layers; the in-memory lookup never blocks.
func (s *Store) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	ev, ok := s.events[id]
	if !ok {
		return nil, ErrEventNotFound
	}
	return ev, nil
}

// GetTickets returns only the ticket types of an event.
func (s *Store) GetTickets(ctx context.Context, id string) ([]model.TicketType, error) {
	ev, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	return ev.TicketTypes, nil
}

// GetAddOns returns only the add-ons of an event.
func (s *Store) GetAddOns(ctx context.Context, id string) ([]model.AddOn, error) {
	ev, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	return ev.AddOns, nil
}
