package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/ticket-selector/internal/model"
)

// LoadMySQL reads the full catalog out of MySQL into memory.  It is a
// startup-time operation: the result is handed to NewStore and the database
// connection can be closed afterwards, because the catalog never changes
// for the lifetime of the process.
//
// Prices are stored as DECIMAL columns and scanned as strings so they reach
// decimal.Decimal without float conversion.  Row order follows the
// `position` column, which defines the widget display order.
func LoadMySQL(ctx context.Context, db *sql.DB) ([]model.Event, error) {
	events, err := loadEvents(ctx, db)
	if err != nil {
		return nil, err
	}
	for i := range events {
		ev := &events[i]
		if ev.TicketTypes, err = loadTicketTypes(ctx, db, ev.ID); err != nil {
			return nil, err
		}
		if ev.AddOns, err = loadAddOns(ctx, db, ev.ID); err != nil {
			return nil, err
		}
	}
	return events, nil
}

func loadEvents(ctx context.Context, db *sql.DB) ([]model.Event, error) {
	const q = `SELECT id, name, venue, image_url FROM events ORDER BY id`
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("catalog: query events: %w", err)
	}
	defer rows.Close()
	var events []model.Event
	for rows.Next() {
		var ev model.Event
		if err := rows.Scan(&ev.ID, &ev.Name, &ev.Venue, &ev.ImageURL); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func loadTicketTypes(ctx context.Context, db *sql.DB, eventID string) ([]model.TicketType, error) {
	const q = `SELECT id, name, description, price, min_quantity, max_quantity
               FROM ticket_types
               WHERE event_id = ?
               ORDER BY position ASC`
	rows, err := db.QueryContext(ctx, q, eventID)
	if err != nil {
		return nil, fmt.Errorf("catalog: query ticket types: %w", err)
	}
	defer rows.Close()
	var tickets []model.TicketType
	for rows.Next() {
		var (
			tt    model.TicketType
			desc  sql.NullString
			price string
			max   sql.NullInt64
		)
		if err := rows.Scan(&tt.ID, &tt.Name, &desc, &price, &tt.MinQuantity, &max); err != nil {
			return nil, err
		}
		tt.Description = desc.String
		if tt.Price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("catalog: ticket type %q has invalid price %q: %w", tt.ID, price, err)
		}
		if max.Valid {
			m := int(max.Int64)
			tt.MaxQuantity = &m
		}
		tickets = append(tickets, tt)
	}
	return tickets, rows.Err()
}

func loadAddOns(ctx context.Context, db *sql.DB, eventID string) ([]model.AddOn, error) {
	const q = `SELECT id, name, description, price, image_url, min_required_tickets
               FROM add_ons
               WHERE event_id = ?
               ORDER BY position ASC`
	rows, err := db.QueryContext(ctx, q, eventID)
	if err != nil {
		return nil, fmt.Errorf("catalog: query add-ons: %w", err)
	}
	defer rows.Close()
	var addons []model.AddOn
	for rows.Next() {
		var (
			ao    model.AddOn
			price string
		)
		if err := rows.Scan(&ao.ID, &ao.Name, &ao.Description, &price, &ao.ImageURL, &ao.MinRequiredTickets); err != nil {
			return nil, err
		}
		if ao.Price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("catalog: add-on %q has invalid price %q: %w", ao.ID, price, err)
		}
		addons = append(addons, ao)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range addons {
		ao := &addons[i]
		var err error
		if ao.RequiresTicketTypes, err = loadRequirements(ctx, db, ao.ID); err != nil {
			return nil, err
		}
		if ao.Variants, err = loadVariants(ctx, db, ao.ID); err != nil {
			return nil, err
		}
	}
	return addons, nil
}

func loadRequirements(ctx context.Context, db *sql.DB, addonID string) ([]string, error) {
	const q = `SELECT ticket_type_id FROM add_on_requirements WHERE add_on_id = ? ORDER BY ticket_type_id`
	rows, err := db.QueryContext(ctx, q, addonID)
	if err != nil {
		return nil, fmt.Errorf("catalog: query add-on requirements: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func loadVariants(ctx context.Context, db *sql.DB, addonID string) ([]model.Variant, error) {
	const q = `SELECT id, name, price_modifier, available
               FROM add_on_variants
               WHERE add_on_id = ?
               ORDER BY position ASC`
	rows, err := db.QueryContext(ctx, q, addonID)
	if err != nil {
		return nil, fmt.Errorf("catalog: query add-on variants: %w", err)
	}
	defer rows.Close()
	var variants []model.Variant
	for rows.Next() {
		var (
			v   model.Variant
			mod string
		)
		if err := rows.Scan(&v.ID, &v.Name, &mod, &v.Available); err != nil {
			return nil, err
		}
		if v.PriceModifier, err = decimal.NewFromString(mod); err != nil {
			return nil, fmt.Errorf("catalog: variant %q has invalid price modifier %q: %w", v.ID, mod, err)
		}
		variants = append(variants, v)
	}
	return variants, rows.Err()
}
