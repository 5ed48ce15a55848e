// Package cart implements cart validation and pricing.  A Validator checks a
// client-proposed Selection against one event's catalog and computes an
// exact decimal total.  Validation is a pure function over the immutable
// catalog: no state is read or written besides the inputs, so repeated calls
// with the same selection always produce identical results.
package cart

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/ticket-selector/internal/catalog"
	"github.com/iliyamo/ticket-selector/internal/model"
)

// Validator validates selections against catalog data.
type Validator struct {
	store *catalog.Store
}

// NewValidator constructs a Validator.  The store must be non-nil.
func NewValidator(store *catalog.Store) *Validator {
	if store == nil {
		panic("nil catalog store passed to NewValidator")
	}
	return &Validator{store: store}
}

// Validate resolves the event and checks the selection against it.  An
// unknown event id is the only error condition (catalog.ErrEventNotFound);
// every business-rule failure is reported as data inside the result.
//
// Violations are ordered deterministically: ticket checks before add-on
// checks, known identifiers in catalog declaration order, unknown
// identifiers last in lexicographic order.  The total always reflects the
// submitted selection as-is; entries that cannot be priced (unknown ids,
// negative quantities) contribute nothing.
func (v *Validator) Validate(ctx context.Context, eventID string, sel model.Selection) (*model.ValidationResult, error) {
	ev, err := v.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	res := &model.ValidationResult{
		Errors:   []string{},
		Warnings: []string{},
		Total:    decimal.Zero,
	}

	checkTickets(ev, sel, res)
	checkAddOns(ev, sel, res)
	res.Valid = len(res.Errors) == 0
	return res, nil
}

// checkTickets validates ticket quantities and accumulates the ticket
// subtotal.  Known ticket types are visited in catalog order; ids the event
// does not declare are reported afterwards, sorted.
func checkTickets(ev *model.Event, sel model.Selection, res *model.ValidationResult) {
	for i := range ev.TicketTypes {
		tt := &ev.TicketTypes[i]
		qty, ok := sel.Tickets[tt.ID]
		if !ok {
			continue
		}
		if qty < 0 {
			res.Errors = append(res.Errors, fmt.Sprintf("quantity for ticket type %s cannot be negative", tt.Name))
			continue
		}
		if tt.MaxQuantity != nil && qty > *tt.MaxQuantity {
			res.Errors = append(res.Errors, fmt.Sprintf("ticket type %s exceeds maximum of %d", tt.Name, *tt.MaxQuantity))
		}
		res.Total = res.Total.Add(tt.Price.Mul(decimal.NewFromInt(int64(qty))))
	}
	for _, id := range unknownTicketIDs(ev, sel) {
		res.Errors = append(res.Errors, fmt.Sprintf("unknown ticket type %s", id))
	}
}

// checkAddOns validates add-on eligibility and variants and accumulates the
// add-on subtotal.  Entries with zero quantity are ignored entirely, so an
// ineligible add-on left at quantity 0 never blocks the cart.
func checkAddOns(ev *model.Event, sel model.Selection, res *model.ValidationResult) {
	for i := range ev.AddOns {
		ao := &ev.AddOns[i]
		item, ok := sel.AddOns[ao.ID]
		if !ok || item.Quantity == 0 {
			continue
		}
		if item.Quantity < 0 {
			res.Errors = append(res.Errors, fmt.Sprintf("quantity for add-on %s cannot be negative", ao.Name))
			continue
		}
		if len(ao.RequiresTicketTypes) > 0 && !meetsRequirement(ev, sel, ao) {
			res.Errors = append(res.Errors, fmt.Sprintf("add-on requires ticket type %s", requiredNames(ev, ao)))
		}

		unit := ao.Price
		if len(ao.Variants) > 0 {
			switch variant, ok := ao.Variant(item.VariantID); {
			case item.VariantID == "":
				res.Errors = append(res.Errors, fmt.Sprintf("add-on %s requires a variant selection", ao.Name))
			case !ok:
				res.Errors = append(res.Errors, fmt.Sprintf("unknown variant %s for add-on %s", item.VariantID, ao.Name))
			case !variant.Available:
				res.Errors = append(res.Errors, fmt.Sprintf("variant %s for add-on %s is not available", variant.Name, ao.Name))
				unit = unit.Add(variant.PriceModifier)
			default:
				unit = unit.Add(variant.PriceModifier)
			}
		}
		res.Total = res.Total.Add(unit.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	for _, id := range unknownAddOnIDs(ev, sel) {
		res.Errors = append(res.Errors, fmt.Sprintf("unknown add-on %s", id))
	}
}

// meetsRequirement reports whether any of the add-on's required ticket
// types reaches the add-on's threshold in the selection.
func meetsRequirement(ev *model.Event, sel model.Selection, ao *model.AddOn) bool {
	need := ao.MinRequired()
	for _, id := range ao.RequiresTicketTypes {
		if sel.Tickets[id] >= need {
			return true
		}
	}
	return false
}

// requiredNames renders the display names of an add-on's required ticket
// types, joined with " or " when the rule accepts alternatives.
func requiredNames(ev *model.Event, ao *model.AddOn) string {
	names := make([]string, 0, len(ao.RequiresTicketTypes))
	for _, id := range ao.RequiresTicketTypes {
		if tt, ok := ev.TicketType(id); ok {
			names = append(names, tt.Name)
		} else {
			names = append(names, id)
		}
	}
	return strings.Join(names, " or ")
}

func unknownTicketIDs(ev *model.Event, sel model.Selection) []string {
	var unknown []string
	for id := range sel.Tickets {
		if _, ok := ev.TicketType(id); !ok {
			unknown = append(unknown, id)
		}
	}
	sort.Strings(unknown)
	return unknown
}

func unknownAddOnIDs(ev *model.Event, sel model.Selection) []string {
	var unknown []string
	for id, item := range sel.AddOns {
		if item.Quantity == 0 {
			continue
		}
		if _, ok := ev.AddOn(id); !ok {
			unknown = append(unknown, id)
		}
	}
	sort.Strings(unknown)
	return unknown
}
