package cart

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/ticket-selector/internal/catalog"
	"github.com/iliyamo/ticket-selector/internal/model"
)

func intPtr(n int) *int { return &n }

// testStore builds a catalog with one event: Adult $50 (max 10), Child $25
// (max 10), VIP Parking $20 requiring at least one Adult, and a T-Shirt
// with variants (XXL costs $5 extra, XS is unavailable).
func testStore(t *testing.T) *catalog.Store {
	t.Helper()
	events := []model.Event{{
		ID:   "e1",
		Name: "Summer Festival",
		TicketTypes: []model.TicketType{
			{ID: "adult", Name: "Adult", Price: decimal.NewFromInt(50), MaxQuantity: intPtr(10)},
			{ID: "child", Name: "Child", Price: decimal.NewFromInt(25), MaxQuantity: intPtr(10)},
		},
		AddOns: []model.AddOn{
			{
				ID: "vip-parking", Name: "VIP Parking",
				Price:               decimal.NewFromInt(20),
				RequiresTicketTypes: []string{"adult"},
				MinRequiredTickets:  1,
			},
			{
				ID: "tshirt", Name: "Event T-Shirt",
				Price: decimal.NewFromInt(35),
				Variants: []model.Variant{
					{ID: "m", Name: "M", Available: true},
					{ID: "xxl", Name: "XXL", PriceModifier: decimal.NewFromInt(5), Available: true},
					{ID: "xs", Name: "XS", Available: false},
				},
			},
		},
	}}
	store, err := catalog.NewStore(events)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func validate(t *testing.T, store *catalog.Store, sel model.Selection) *model.ValidationResult {
	t.Helper()
	res, err := NewValidator(store).Validate(context.Background(), "e1", sel)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	return res
}

func TestValidateValidSelection(t *testing.T) {
	res := validate(t, testStore(t), model.Selection{
		Tickets: map[string]int{"adult": 2, "child": 1},
		AddOns:  map[string]model.AddOnSelection{"vip-parking": {Quantity: 1}},
	})
	if !res.Valid {
		t.Fatalf("expected valid, got errors %v", res.Errors)
	}
	if len(res.Errors) != 0 {
		t.Errorf("expected no errors, got %v", res.Errors)
	}
	if want := decimal.NewFromInt(145); !res.Total.Equal(want) {
		t.Errorf("total = %s, want %s", res.Total, want)
	}
}

func TestValidateIneligibleAddOn(t *testing.T) {
	res := validate(t, testStore(t), model.Selection{
		Tickets: map[string]int{"adult": 0, "child": 2},
		AddOns:  map[string]model.AddOnSelection{"vip-parking": {Quantity: 1}},
	})
	if res.Valid {
		t.Fatal("expected invalid")
	}
	want := []string{"add-on requires ticket type Adult"}
	if !reflect.DeepEqual(res.Errors, want) {
		t.Errorf("errors = %v, want %v", res.Errors, want)
	}
	// The total still reflects the selection as-is.
	if want := decimal.NewFromInt(70); !res.Total.Equal(want) {
		t.Errorf("total = %s, want %s", res.Total, want)
	}
}

func TestValidateZeroQuantityAddOnIsIgnored(t *testing.T) {
	res := validate(t, testStore(t), model.Selection{
		Tickets: map[string]int{"child": 1},
		AddOns:  map[string]model.AddOnSelection{"vip-parking": {Quantity: 0}},
	})
	if !res.Valid {
		t.Fatalf("expected valid, got errors %v", res.Errors)
	}
}

func TestValidateExceedsMaximum(t *testing.T) {
	res := validate(t, testStore(t), model.Selection{
		Tickets: map[string]int{"adult": 11},
	})
	if res.Valid {
		t.Fatal("expected invalid")
	}
	if len(res.Errors) != 1 || !strings.Contains(res.Errors[0], "exceeds maximum") {
		t.Errorf("errors = %v, want one \"exceeds maximum\" violation", res.Errors)
	}
}

func TestValidateUnknownTicketType(t *testing.T) {
	res := validate(t, testStore(t), model.Selection{
		Tickets: map[string]int{"senior": 1},
	})
	if res.Valid {
		t.Fatal("expected invalid")
	}
	want := []string{"unknown ticket type senior"}
	if !reflect.DeepEqual(res.Errors, want) {
		t.Errorf("errors = %v, want %v", res.Errors, want)
	}
	if !res.Total.IsZero() {
		t.Errorf("unknown tickets must not be priced, total = %s", res.Total)
	}
}

func TestValidateUnknownAddOn(t *testing.T) {
	res := validate(t, testStore(t), model.Selection{
		AddOns: map[string]model.AddOnSelection{"poster": {Quantity: 1}},
	})
	if res.Valid {
		t.Fatal("expected invalid")
	}
	want := []string{"unknown add-on poster"}
	if !reflect.DeepEqual(res.Errors, want) {
		t.Errorf("errors = %v, want %v", res.Errors, want)
	}
}

func TestValidateNegativeQuantities(t *testing.T) {
	res := validate(t, testStore(t), model.Selection{
		Tickets: map[string]int{"adult": -1},
		AddOns:  map[string]model.AddOnSelection{"tshirt": {Quantity: -2, VariantID: "m"}},
	})
	if res.Valid {
		t.Fatal("expected invalid")
	}
	if len(res.Errors) != 2 {
		t.Fatalf("errors = %v, want 2 violations", res.Errors)
	}
	if !res.Total.IsZero() {
		t.Errorf("negative quantities must not be priced, total = %s", res.Total)
	}
}

func TestValidateVariantRequired(t *testing.T) {
	res := validate(t, testStore(t), model.Selection{
		AddOns: map[string]model.AddOnSelection{"tshirt": {Quantity: 1}},
	})
	if res.Valid {
		t.Fatal("expected invalid")
	}
	if len(res.Errors) != 1 || !strings.Contains(res.Errors[0], "requires a variant") {
		t.Errorf("errors = %v, want a variant-selection violation", res.Errors)
	}
	// Priced at the base price when no variant is chosen.
	if want := decimal.NewFromInt(35); !res.Total.Equal(want) {
		t.Errorf("total = %s, want %s", res.Total, want)
	}
}

func TestValidateUnknownVariant(t *testing.T) {
	res := validate(t, testStore(t), model.Selection{
		AddOns: map[string]model.AddOnSelection{"tshirt": {Quantity: 1, VariantID: "xxxl"}},
	})
	if res.Valid {
		t.Fatal("expected invalid")
	}
	if len(res.Errors) != 1 || !strings.Contains(res.Errors[0], "unknown variant") {
		t.Errorf("errors = %v, want an unknown-variant violation", res.Errors)
	}
}

func TestValidateUnavailableVariant(t *testing.T) {
	res := validate(t, testStore(t), model.Selection{
		AddOns: map[string]model.AddOnSelection{"tshirt": {Quantity: 1, VariantID: "xs"}},
	})
	if res.Valid {
		t.Fatal("expected invalid")
	}
	if len(res.Errors) != 1 || !strings.Contains(res.Errors[0], "not available") {
		t.Errorf("errors = %v, want an unavailable-variant violation", res.Errors)
	}
}

func TestValidateVariantModifierPricing(t *testing.T) {
	res := validate(t, testStore(t), model.Selection{
		AddOns: map[string]model.AddOnSelection{"tshirt": {Quantity: 2, VariantID: "xxl"}},
	})
	if !res.Valid {
		t.Fatalf("expected valid, got errors %v", res.Errors)
	}
	// 2 × (35 + 5)
	if want := decimal.NewFromInt(80); !res.Total.Equal(want) {
		t.Errorf("total = %s, want %s", res.Total, want)
	}
}

func TestValidateViolationOrder(t *testing.T) {
	res := validate(t, testStore(t), model.Selection{
		Tickets: map[string]int{"child": 20, "senior": 1},
		AddOns:  map[string]model.AddOnSelection{"vip-parking": {Quantity: 1}, "poster": {Quantity: 1}},
	})
	want := []string{
		"ticket type Child exceeds maximum of 10",
		"unknown ticket type senior",
		"add-on requires ticket type Adult",
		"unknown add-on poster",
	}
	if !reflect.DeepEqual(res.Errors, want) {
		t.Errorf("errors = %v, want %v", res.Errors, want)
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	store := testStore(t)
	sel := model.Selection{
		Tickets: map[string]int{"adult": 3, "senior": 2},
		AddOns:  map[string]model.AddOnSelection{"tshirt": {Quantity: 1, VariantID: "m"}},
	}
	first := validate(t, store, sel)
	second := validate(t, store, sel)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated validation differs:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestValidateUnknownEvent(t *testing.T) {
	_, err := NewValidator(testStore(t)).Validate(context.Background(), "nope", model.Selection{})
	if err != catalog.ErrEventNotFound {
		t.Fatalf("err = %v, want ErrEventNotFound", err)
	}
}

// Fractional prices must sum without drift: 3 × 20.40 is exactly 61.20.
func TestValidateExactDecimalTotal(t *testing.T) {
	events, err := catalog.LoadFixture("")
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	store, err := catalog.NewStore(events)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	res, err := NewValidator(store).Validate(context.Background(), "arte-museum-ny", model.Selection{
		Tickets: map[string]int{"adult": 3},
	})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !res.Valid {
		t.Fatalf("expected valid, got errors %v", res.Errors)
	}
	if want := decimal.RequireFromString("61.20"); !res.Total.Equal(want) {
		t.Errorf("total = %s, want %s", res.Total, want)
	}
}
