package favorite

import (
	"context"

	favoriteRepo "locallink/database/repository/favorite"
	serviceRepo "locallink/database/repository/service"
	"locallink/models"
	"locallink/utils"

	"github.com/google/uuid"
)

// FavoriteService toggles and lists (user, service) wishlist records.
type FavoriteService interface {
	Toggle(ctx context.Context, principal models.Principal, serviceID string) (bool, error)
	Remove(ctx context.Context, principal models.Principal, serviceID string) error
	Check(ctx context.Context, principal models.Principal, serviceID string) (bool, error)
	List(ctx context.Context, principal models.Principal) ([]models.Favorite, error)
}

// DefaultFavoriteService is the production implementation.
type DefaultFavoriteService struct {
	Favorites favoriteRepo.FavoriteRepository
	Services  serviceRepo.ServiceRepository
}

// Toggle flips the favorite state for the pair and returns the new state.
// A duplicate-key race from a concurrent double-toggle counts as "already
// favorited" rather than an error.
func (s *DefaultFavoriteService) Toggle(ctx context.Context, principal models.Principal, serviceID string) (bool, error) {
	svc, err := s.Services.GetByID(serviceID)
	if err != nil {
		return false, err
	}
	if svc == nil {
		return false, utils.NewNotFoundError("service not found")
	}
	if !svc.IsActive {
		return false, utils.NewValidationError("service is not active")
	}

	removed, err := s.Favorites.DeleteByUserService(principal.ID, serviceID)
	if err != nil {
		return false, err
	}
	if removed {
		return false, nil
	}

	fav := &models.Favorite{
		ID:        uuid.New().String(),
		UserID:    principal.ID,
		ServiceID: serviceID,
	}
	if err := s.Favorites.Insert(fav); err != nil {
		if favoriteRepo.IsDuplicate(err) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

// Remove deletes the favorite if present. Removing an absent favorite is a
// no-op, so the operation is idempotent.
func (s *DefaultFavoriteService) Remove(ctx context.Context, principal models.Principal, serviceID string) error {
	_, err := s.Favorites.DeleteByUserService(principal.ID, serviceID)
	return err
}

// Check reports whether the caller has favorited the service.
func (s *DefaultFavoriteService) Check(ctx context.Context, principal models.Principal, serviceID string) (bool, error) {
	return s.Favorites.Exists(principal.ID, serviceID)
}

// List returns the caller's favorites, newest first.
func (s *DefaultFavoriteService) List(ctx context.Context, principal models.Principal) ([]models.Favorite, error) {
	return s.Favorites.ListByUser(principal.ID)
}
