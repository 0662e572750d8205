package catalog

import (
	"context"
	"fmt"
	"time"

	categoryRepo "locallink/database/repository/category"
	eventRepo "locallink/database/repository/event"
	serviceRepo "locallink/database/repository/service"
	userRepo "locallink/database/repository/user"
	"locallink/models"
	"locallink/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Services   serviceRepo.ServiceRepository
	Categories categoryRepo.CategoryRepository
	Events     eventRepo.EventRepository
	Users      userRepo.UserRepository
	Cache      *redis.Client
}

// GetService returns a single service with its discount annotation.
func (s *DefaultCatalogService) GetService(ctx context.Context, id string) (*models.AnnotatedService, error) {
	svc, err := s.Services.GetByID(id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, utils.NewNotFoundError("service not found")
	}

	names, err := s.categoryNames()
	if err != nil {
		return nil, err
	}
	table, err := s.discountTable(time.Now())
	if err != nil {
		return nil, err
	}
	annotated := Annotate(*svc, names[svc.CategoryID], table)
	return &annotated, nil
}

// CreateService registers a new listing for the calling provider and
// attaches it to the provider's profile.
func (s *DefaultCatalogService) CreateService(ctx context.Context, principal models.Principal, input ServiceInput) (*models.Service, error) {
	if principal.Role != models.RoleProvider {
		return nil, utils.NewForbiddenError("only providers can create services")
	}
	if err := validateServiceInput(input); err != nil {
		return nil, err
	}

	cat, err := s.Categories.GetByID(input.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil || !cat.IsActive {
		return nil, utils.NewValidationError("unknown or inactive category")
	}

	svc := &models.Service{
		ID:               uuid.New().String(),
		Title:            input.Title,
		Description:      input.Description,
		CategoryID:       input.CategoryID,
		ProviderID:       principal.ID,
		Pricing:          input.Pricing,
		PricingUnit:      input.PricingUnit,
		Location:         input.Location,
		Images:           input.Images,
		IsActive:         true,
		HasOffer:         input.HasOffer,
		OfferDescription: input.OfferDescription,
		OfferExpiry:      input.OfferExpiry,
	}
	if err := s.Services.Create(svc); err != nil {
		return nil, err
	}

	if err := s.Users.AddServiceToProfile(principal.ID, svc.ID); err != nil {
		utils.GetLogger().Warn("failed to attach service to profile",
			zap.String("serviceId", svc.ID), zap.Error(err))
	}
	s.invalidateLocationIndex(ctx)
	return svc, nil
}

// UpdateService edits a listing; only the owning provider may do so.
func (s *DefaultCatalogService) UpdateService(ctx context.Context, principal models.Principal, id string, input ServiceInput) (*models.Service, error) {
	svc, err := s.ownedService(principal, id, false)
	if err != nil {
		return nil, err
	}
	if err := validateServiceInput(input); err != nil {
		return nil, err
	}

	fields := bson.M{
		"title":            input.Title,
		"description":      input.Description,
		"pricing":          input.Pricing,
		"pricingUnit":      input.PricingUnit,
		"location":         input.Location,
		"images":           input.Images,
		"hasOffer":         input.HasOffer,
		"offerDescription": input.OfferDescription,
		"offerExpiry":      input.OfferExpiry,
	}
	if input.CategoryID != svc.CategoryID {
		cat, err := s.Categories.GetByID(input.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil || !cat.IsActive {
			return nil, utils.NewValidationError("unknown or inactive category")
		}
		fields["categoryId"] = input.CategoryID
	}

	if err := s.Services.Update(id, fields); err != nil {
		return nil, err
	}
	s.invalidateLocationIndex(ctx)
	return s.Services.GetByID(id)
}

// DeleteService removes a listing (owner or admin) and detaches it from the
// owning profile. This is a hard delete; bookings referencing it survive.
func (s *DefaultCatalogService) DeleteService(ctx context.Context, principal models.Principal, id string) error {
	svc, err := s.ownedService(principal, id, true)
	if err != nil {
		return err
	}

	if err := s.Services.Delete(id); err != nil {
		return err
	}
	if err := s.Users.RemoveServiceFromProfile(svc.ProviderID, id); err != nil {
		utils.GetLogger().Warn("failed to detach service from profile",
			zap.String("serviceId", id), zap.Error(err))
	}
	s.invalidateLocationIndex(ctx)
	return nil
}

// ToggleAvailability flips the listing between online and offline, returning
// the new state.
func (s *DefaultCatalogService) ToggleAvailability(ctx context.Context, principal models.Principal, id string) (bool, error) {
	svc, err := s.ownedService(principal, id, false)
	if err != nil {
		return false, err
	}

	next := !svc.IsActive
	if err := s.Services.Update(id, bson.M{"isActive": next}); err != nil {
		return false, err
	}
	s.invalidateLocationIndex(ctx)
	return next, nil
}

// UpdatePricing changes the pricing model fields of a listing.
func (s *DefaultCatalogService) UpdatePricing(ctx context.Context, principal models.Principal, id string, input PricingInput) error {
	if _, err := s.ownedService(principal, id, false); err != nil {
		return err
	}
	if input.Pricing < 0 {
		return utils.NewValidationError("pricing must not be negative")
	}
	if !models.ValidPricingUnit(input.PricingUnit) {
		return utils.NewValidationError("invalid pricing unit")
	}
	return s.Services.Update(id, bson.M{
		"pricing":     input.Pricing,
		"pricingUnit": input.PricingUnit,
	})
}

// ownedService fetches a service and enforces ownership; admins pass when
// allowAdmin is set.
func (s *DefaultCatalogService) ownedService(principal models.Principal, id string, allowAdmin bool) (*models.Service, error) {
	svc, err := s.Services.GetByID(id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, utils.NewNotFoundError("service not found")
	}
	if svc.ProviderID != principal.ID && !(allowAdmin && principal.IsAdmin()) {
		return nil, utils.NewForbiddenError("not the owner of this service")
	}
	return svc, nil
}

func validateServiceInput(input ServiceInput) error {
	if input.Title == "" || input.Description == "" {
		return utils.NewValidationError("title and description are required")
	}
	if input.Pricing < 0 {
		return utils.NewValidationError("pricing must not be negative")
	}
	if !models.ValidPricingUnit(input.PricingUnit) {
		return utils.NewValidationError("invalid pricing unit")
	}
	if loc := input.Location.Coordinates; loc != nil {
		if loc.Type != "Point" || len(loc.Coordinates) != 2 {
			return utils.NewValidationError("coordinates must be a GeoJSON Point")
		}
	}
	return nil
}

// categoryNames returns the id -> name lookup used by discount annotation.
func (s *DefaultCatalogService) categoryNames() (map[string]string, error) {
	categories, err := s.Categories.GetAll(false)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names, nil
}

// discountTable loads the active events and folds them into the category
// discount lookup.
func (s *DefaultCatalogService) discountTable(now time.Time) (map[string]int, error) {
	events, err := s.Events.GetActive(now)
	if err != nil {
		return nil, fmt.Errorf("failed to load active events: %w", err)
	}
	return BuildDiscountTable(events, now), nil
}
