package catalog

import (
	"testing"
	"time"

	"locallink/models"
)

func TestParseDiscountPercent(t *testing.T) {
	cases := map[string]int{
		"20% OFF":         20,
		"Save 15 % today": 15,
		"5%":              5,
		"100% free":       100,
		"no discount":     0,
		"":                0,
		"0% OFF":          0,
		"150% OFF":        0,
	}
	for in, want := range cases {
		if got := ParseDiscountPercent(in); got != want {
			t.Errorf("ParseDiscountPercent(%q) = %d, want %d", in, got, want)
		}
	}
}

func activeWindow(now time.Time) (time.Time, time.Time) {
	return now.Add(-24 * time.Hour), now.Add(24 * time.Hour)
}

func TestBuildDiscountTable(t *testing.T) {
	now := time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)
	start, end := activeWindow(now)

	events := []models.Event{
		{Category: "Plumbers", Discount: "20% OFF", IsActive: true, StartDate: start, EndDate: end},
		{Category: " plumbers ", Discount: "10% OFF", IsActive: true, StartDate: start, EndDate: end},
		{Category: "Cleaning", Discount: "15% OFF", IsActive: true, StartDate: start, EndDate: end},
		{Category: "Gardening", Discount: "30% OFF", IsActive: false, StartDate: start, EndDate: end},
		{Category: "Movers", Discount: "25% OFF", IsActive: true, StartDate: end, EndDate: end.Add(time.Hour)},
		{Category: "Electricians", Discount: "great deals", IsActive: true, StartDate: start, EndDate: end},
	}

	table := BuildDiscountTable(events, now)

	if got := table["plumbers"]; got != 20 {
		t.Errorf("plumbers discount = %d, want 20 (highest of overlapping events)", got)
	}
	if got := table["cleaning"]; got != 15 {
		t.Errorf("cleaning discount = %d, want 15", got)
	}
	if _, ok := table["gardening"]; ok {
		t.Error("inactive event contributed a discount")
	}
	if _, ok := table["movers"]; ok {
		t.Error("event outside its date window contributed a discount")
	}
	if _, ok := table["electricians"]; ok {
		t.Error("unparseable discount text contributed a discount")
	}
}

func TestAnnotate(t *testing.T) {
	table := map[string]int{"plumbers": 20}
	svc := models.Service{ID: "s1", Pricing: 50, IsActive: true}

	out := Annotate(svc, "Plumbers", table)
	if !out.HasDiscount {
		t.Fatal("expected a discount annotation for a matching category")
	}
	if out.OriginalPrice != 50 {
		t.Errorf("OriginalPrice = %v, want 50", out.OriginalPrice)
	}
	if out.DiscountedPrice != 40 {
		t.Errorf("DiscountedPrice = %v, want 40", out.DiscountedPrice)
	}
	if out.DiscountPercentage != 20 {
		t.Errorf("DiscountPercentage = %d, want 20", out.DiscountPercentage)
	}
	if out.Pricing != 50 {
		t.Errorf("stored pricing mutated to %v", out.Pricing)
	}

	plain := Annotate(svc, "Cleaning", table)
	if plain.HasDiscount || plain.DiscountedPrice != 0 {
		t.Error("unmatched category got a discount annotation")
	}
}

func TestAnnotateRoundsToCents(t *testing.T) {
	table := map[string]int{"cleaning": 15}
	svc := models.Service{Pricing: 33.33}

	out := Annotate(svc, "cleaning", table)
	if out.DiscountedPrice != 28.33 {
		t.Errorf("DiscountedPrice = %v, want 28.33", out.DiscountedPrice)
	}
}
