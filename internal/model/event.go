package model

import "github.com/shopspring/decimal"

// Event represents a single ticketed occasion together with everything the
// selection widget needs to render it: display metadata, the purchasable
// ticket types and the optional add-ons.  Events are built once at catalog
// load time and are never mutated afterwards, so they may be shared freely
// between concurrent requests.
//
// Fields:
//  ID          – stable identifier used in URLs (e.g. "arte-museum-ny").
//  Name        – display name of the event.
//  Venue       – human readable venue name.
//  ImageURL    – hero image shown in the widget header.
//  TicketTypes – purchasable admission categories, in display order.
//  AddOns      – optional extras, in display order.
type Event struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Venue       string       `json:"venue"`
	ImageURL    string       `json:"image_url"`
	TicketTypes []TicketType `json:"ticket_types"`
	AddOns      []AddOn      `json:"add_ons"`
}

// TicketType is a purchasable category of admission (e.g. Adult, Child).
// Price is the unit price as an exact decimal; monetary values are never
// represented as floats anywhere in the service.  MinQuantity is
// informational for the widget (pre-filled pickers); it is not enforced by
// validation.  MaxQuantity, when non-nil, caps the requested quantity.
type TicketType struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	MinQuantity int             `json:"min_quantity"`
	MaxQuantity *int            `json:"max_quantity,omitempty"`
}

// AddOn is an optional purchasable extra attached to an event.  When
// RequiresTicketTypes is non-empty the add-on is only eligible if at least
// one of the referenced ticket types reaches MinRequiredTickets units in
// the same selection (MinRequiredTickets defaults to 1 when unset).  When
// Variants is non-empty a selection of this add-on must name one of them.
type AddOn struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	Price               decimal.Decimal `json:"price"`
	ImageURL            string          `json:"image_url"`
	RequiresTicketTypes []string        `json:"requires_ticket_types,omitempty"`
	MinRequiredTickets  int             `json:"min_required_tickets,omitempty"`
	Variants            []Variant       `json:"variants,omitempty"`
}

// Variant is a concrete option of an add-on, such as a t-shirt size or a
// book edition.  PriceModifier is added to the add-on unit price and may be
// negative for discounted variants.  Unavailable variants stay visible in
// the catalog but are rejected by validation.
type Variant struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	PriceModifier decimal.Decimal `json:"price_modifier"`
	Available     bool            `json:"available"`
}

// TicketType returns the ticket type with the given ID, or false when the
// event has no such ticket type.
func (e *Event) TicketType(id string) (*TicketType, bool) {
	for i := range e.TicketTypes {
		if e.TicketTypes[i].ID == id {
			return &e.TicketTypes[i], true
		}
	}
	return nil, false
}

// AddOn returns the add-on with the given ID, or false when the event has
// no such add-on.
func (e *Event) AddOn(id string) (*AddOn, bool) {
	for i := range e.AddOns {
		if e.AddOns[i].ID == id {
			return &e.AddOns[i], true
		}
	}
	return nil, false
}

// Variant returns the variant with the given ID, or false when the add-on
// declares no such variant.
func (a *AddOn) Variant(id string) (*Variant, bool) {
	for i := range a.Variants {
		if a.Variants[i].ID == id {
			return &a.Variants[i], true
		}
	}
	return nil, false
}

// MinRequired returns the effective eligibility threshold for an add-on
// that declares required ticket types.  A zero MinRequiredTickets means
// "at least one".
func (a *AddOn) MinRequired() int {
	if a.MinRequiredTickets < 1 {
		return 1
	}
	return a.MinRequiredTickets
}
