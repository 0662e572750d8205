package models

import "time"

// Pricing units a service may be charged in.
const (
	PricingUnitHour    = "hour"
	PricingUnitDay     = "day"
	PricingUnitProject = "project"
	PricingUnitFixed   = "fixed"
)

// ValidPricingUnit reports whether u is one of the accepted pricing units.
func ValidPricingUnit(u string) bool {
	switch u {
	case PricingUnitHour, PricingUnitDay, PricingUnitProject, PricingUnitFixed:
		return true
	}
	return false
}

// GeoPoint is a GeoJSON Point: [longitude, latitude].
type GeoPoint struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

// ServiceLocation is the textual location plus optional coordinates used by
// radius search. Services without coordinates never match a radius query.
type ServiceLocation struct {
	City        string    `json:"city" bson:"city"`
	Area        string    `json:"area" bson:"area"`
	Country     string    `json:"country" bson:"country"`
	Coordinates *GeoPoint `json:"coordinates,omitempty" bson:"coordinates,omitempty"`
}

// Service is a provider's listing.
//
// AverageRating and TotalReviews are denormalized and recomputed by the
// review rollup whenever a review for the service changes. The HasOffer
// fields are the legacy manual offer mechanism, independent of the
// event-based category discounts; when both apply the event discount wins
// at display time.
type Service struct {
	ID               string          `json:"id" bson:"id"`
	Title            string          `json:"title" bson:"title"`
	Description      string          `json:"description" bson:"description"`
	CategoryID       string          `json:"categoryId" bson:"categoryId"`
	ProviderID       string          `json:"providerId" bson:"providerId"`
	Pricing          float64         `json:"pricing" bson:"pricing"`
	PricingUnit      string          `json:"pricingUnit" bson:"pricingUnit"`
	Location         ServiceLocation `json:"location" bson:"location"`
	Images           []string        `json:"images,omitempty" bson:"images,omitempty"`
	AverageRating    float64         `json:"averageRating" bson:"averageRating"`
	TotalReviews     int             `json:"totalReviews" bson:"totalReviews"`
	IsActive         bool            `json:"isActive" bson:"isActive"`
	HasOffer         bool            `json:"hasOffer" bson:"hasOffer"`
	OfferDescription string          `json:"offerDescription,omitempty" bson:"offerDescription,omitempty"`
	OfferExpiry      *time.Time      `json:"offerExpiry,omitempty" bson:"offerExpiry,omitempty"`
	CreatedAt        time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt" bson:"updatedAt"`
}

// AnnotatedService is a service decorated with the outcome of discount
// resolution. Prices are display values only; the stored pricing is untouched.
type AnnotatedService struct {
	Service            `bson:",inline"`
	HasDiscount        bool    `json:"hasDiscount"`
	OriginalPrice      float64 `json:"originalPrice,omitempty"`
	DiscountedPrice    float64 `json:"discountedPrice,omitempty"`
	DiscountPercentage int     `json:"discountPercentage,omitempty"`
}
