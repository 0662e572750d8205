package models

import (
	"strings"
	"time"
)

// Event audiences.
const (
	AudienceAll      = "all"
	AudienceSeeker   = "seeker"
	AudienceProvider = "provider"
)

// Event is an admin-managed promotional campaign. Category is a free-text
// string matched against category names by trimmed, lowercased equality, not
// a reference; Discount is free text like "20% OFF" parsed for a leading
// integer percentage. "Active" is computed at query time, never stored.
type Event struct {
	ID             string    `json:"id" bson:"id"`
	Title          string    `json:"title" bson:"title"`
	Description    string    `json:"description,omitempty" bson:"description,omitempty"`
	Category       string    `json:"category" bson:"category"`
	Discount       string    `json:"discount" bson:"discount"`
	StartDate      time.Time `json:"startDate" bson:"startDate"`
	EndDate        time.Time `json:"endDate" bson:"endDate"`
	TargetAudience string    `json:"targetAudience" bson:"targetAudience"`
	IsActive       bool      `json:"isActive" bson:"isActive"`
	Color          string    `json:"color,omitempty" bson:"color,omitempty"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ActiveAt reports whether the event is running at the given instant.
func (e Event) ActiveAt(now time.Time) bool {
	return e.IsActive && !now.Before(e.StartDate) && !now.After(e.EndDate)
}

// NormalizeCategoryName applies the matching normalization shared by events
// and categories: trim surrounding whitespace and lowercase.
func NormalizeCategoryName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
