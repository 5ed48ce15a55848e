package model

import "github.com/shopspring/decimal"

// Selection is a client-proposed cart for a single event: requested
// quantities per ticket type and per add-on.  A missing key means zero.
// Selections are transient; they live for the duration of one validation
// request and are never persisted.
type Selection struct {
	Tickets map[string]int            `json:"tickets"`
	AddOns  map[string]AddOnSelection `json:"addons"`
}

// AddOnSelection is the requested quantity of one add-on plus the chosen
// variant, when the add-on declares variants.  An empty VariantID means no
// variant was chosen.
type AddOnSelection struct {
	Quantity  int    `json:"quantity"`
	VariantID string `json:"variant_id,omitempty"`
}

// ValidationResult is the outcome of validating a Selection.  Violations of
// business rules are data, not errors: a failed validation is still a
// successful request with Valid=false.  Total always reflects the submitted
// selection as-is, even when invalid, using exact decimal arithmetic.
// Errors are ordered: ticket violations first, then add-on violations.
// Warnings is reserved for non-blocking advisories and is currently always
// empty.
type ValidationResult struct {
	Valid    bool            `json:"valid"`
	Errors   []string        `json:"errors"`
	Warnings []string        `json:"warnings"`
	Total    decimal.Decimal `json:"total"`
}
