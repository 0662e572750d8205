package catalog

import (
	"math"
	"regexp"
	"time"

	"locallink/models"
)

// discountPercentRe extracts the leading integer percentage from free-text
// discounts like "20% OFF" or "Save 15 %".
var discountPercentRe = regexp.MustCompile(`(\d+)\s*%`)

// ParseDiscountPercent returns the integer percentage embedded in a discount
// string, or 0 when none can be found.
func ParseDiscountPercent(discount string) int {
	m := discountPercentRe.FindStringSubmatch(discount)
	if m == nil {
		return 0
	}
	percent := 0
	for _, c := range m[1] {
		percent = percent*10 + int(c-'0')
	}
	if percent <= 0 || percent > 100 {
		return 0
	}
	return percent
}

// BuildDiscountTable maps normalized category names to discount percentages
// for the events running at the given instant. When several active events
// target the same normalized category the highest percentage wins, which
// makes the outcome deterministic regardless of fetch order.
func BuildDiscountTable(events []models.Event, now time.Time) map[string]int {
	table := make(map[string]int)
	for _, ev := range events {
		if !ev.ActiveAt(now) {
			continue
		}
		percent := ParseDiscountPercent(ev.Discount)
		if percent == 0 {
			continue
		}
		key := models.NormalizeCategoryName(ev.Category)
		if percent > table[key] {
			table[key] = percent
		}
	}
	return table
}

// Annotate decorates a service with its resolved discount, matching the
// service's category name against the table by trimmed, lowercased equality.
// The event discount takes display precedence over the service's legacy
// offer fields, which pass through untouched.
func Annotate(svc models.Service, categoryName string, table map[string]int) models.AnnotatedService {
	out := models.AnnotatedService{Service: svc}

	percent, ok := table[models.NormalizeCategoryName(categoryName)]
	if !ok || percent == 0 {
		return out
	}

	out.HasDiscount = true
	out.OriginalPrice = svc.Pricing
	out.DiscountedPrice = round2(svc.Pricing * (1 - float64(percent)/100))
	out.DiscountPercentage = percent
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
