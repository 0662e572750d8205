package catalog

import (
	"context"
	"time"

	"locallink/models"
)

// ServiceInput carries the provider-editable fields of a listing.
type ServiceInput struct {
	Title            string                 `json:"title" binding:"required"`
	Description      string                 `json:"description" binding:"required"`
	CategoryID       string                 `json:"categoryId" binding:"required"`
	Pricing          float64                `json:"pricing"`
	PricingUnit      string                 `json:"pricingUnit" binding:"required"`
	Location         models.ServiceLocation `json:"location"`
	Images           []string               `json:"images"`
	HasOffer         bool                   `json:"hasOffer"`
	OfferDescription string                 `json:"offerDescription"`
	OfferExpiry      *time.Time             `json:"offerExpiry"`
}

// PricingInput updates the pricing model of a listing.
type PricingInput struct {
	Pricing     float64 `json:"pricing"`
	PricingUnit string  `json:"pricingUnit" binding:"required"`
}

// CatalogService is the search engine plus the provider-facing CRUD over
// service listings and the location index.
type CatalogService interface {
	Search(ctx context.Context, criteria models.SearchCriteria) (*models.SearchResult, error)
	GetService(ctx context.Context, id string) (*models.AnnotatedService, error)

	CreateService(ctx context.Context, principal models.Principal, input ServiceInput) (*models.Service, error)
	UpdateService(ctx context.Context, principal models.Principal, id string, input ServiceInput) (*models.Service, error)
	DeleteService(ctx context.Context, principal models.Principal, id string) error
	ToggleAvailability(ctx context.Context, principal models.Principal, id string) (bool, error)
	UpdatePricing(ctx context.Context, principal models.Principal, id string, input PricingInput) error

	Countries(ctx context.Context) ([]string, error)
	Cities(ctx context.Context, country string) ([]string, error)
	Areas(ctx context.Context, country, city string) ([]string, error)
}
