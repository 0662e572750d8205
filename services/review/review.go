package review

import (
	"context"
	"fmt"
	"math"

	bookingRepo "locallink/database/repository/booking"
	reviewRepo "locallink/database/repository/review"
	serviceRepo "locallink/database/repository/service"
	"locallink/models"
	"locallink/services/verification"
	"locallink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewInput carries the author-editable fields of a review.
type ReviewInput struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// ReviewService gates review creation behind a completed booking and keeps
// the denormalized service rating in sync with every mutation.
type ReviewService interface {
	CanReview(ctx context.Context, principal models.Principal, serviceID string) (bool, error)
	Create(ctx context.Context, principal models.Principal, serviceID string, input ReviewInput) (*models.Review, error)
	Update(ctx context.Context, principal models.Principal, reviewID string, input ReviewInput) (*models.Review, error)
	Delete(ctx context.Context, principal models.Principal, reviewID string) error
	ListByService(ctx context.Context, serviceID string) ([]models.Review, error)
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Reviews  reviewRepo.ReviewRepository
	Bookings bookingRepo.BookingRepository
	Services serviceRepo.ServiceRepository
	Verifier verification.VerificationService
}

// CanReview reports whether the caller may review the service: a completed
// booking exists for the pair and no prior review does.
func (s *DefaultReviewService) CanReview(ctx context.Context, principal models.Principal, serviceID string) (bool, error) {
	completed, err := s.Bookings.HasCompleted(principal.ID, serviceID)
	if err != nil {
		return false, err
	}
	if !completed {
		return false, nil
	}
	exists, err := s.Reviews.ExistsForUserService(principal.ID, serviceID)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

// Create adds a review after re-checking eligibility server-side, then rolls
// the service rating up and recomputes verification for both parties.
func (s *DefaultReviewService) Create(ctx context.Context, principal models.Principal, serviceID string, input ReviewInput) (*models.Review, error) {
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}

	svc, err := s.Services.GetByID(serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, utils.NewNotFoundError("service not found")
	}

	// Never trust client state: both gates are re-checked here.
	completed, err := s.Bookings.HasCompleted(principal.ID, serviceID)
	if err != nil {
		return nil, err
	}
	if !completed {
		return nil, utils.NewForbiddenError("a completed booking is required before reviewing")
	}
	exists, err := s.Reviews.ExistsForUserService(principal.ID, serviceID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, utils.NewConflictError("you have already reviewed this service")
	}

	rev := &models.Review{
		ID:         uuid.New().String(),
		ServiceID:  serviceID,
		UserID:     principal.ID,
		Rating:     input.Rating,
		Comment:    input.Comment,
		IsApproved: true,
	}
	if err := s.Reviews.Create(rev); err != nil {
		return nil, err
	}

	if err := s.rollupRating(serviceID); err != nil {
		return nil, err
	}
	s.recompute(ctx, principal.ID)
	s.recompute(ctx, svc.ProviderID)
	return rev, nil
}

// Update edits a review (owner or admin) and re-rolls the service rating.
func (s *DefaultReviewService) Update(ctx context.Context, principal models.Principal, reviewID string, input ReviewInput) (*models.Review, error) {
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}

	rev, err := s.ownedReview(principal, reviewID)
	if err != nil {
		return nil, err
	}
	if err := s.Reviews.Update(reviewID, input.Rating, input.Comment); err != nil {
		return nil, err
	}
	if err := s.rollupRating(rev.ServiceID); err != nil {
		return nil, err
	}

	rev.Rating = input.Rating
	rev.Comment = input.Comment
	return rev, nil
}

// Delete removes a review (owner or admin), re-rolls the service rating, and
// recomputes the author's and provider's verification.
func (s *DefaultReviewService) Delete(ctx context.Context, principal models.Principal, reviewID string) error {
	rev, err := s.ownedReview(principal, reviewID)
	if err != nil {
		return err
	}
	if err := s.Reviews.Delete(reviewID); err != nil {
		return err
	}
	if err := s.rollupRating(rev.ServiceID); err != nil {
		return err
	}

	s.recompute(ctx, rev.UserID)
	if svc, err := s.Services.GetByID(rev.ServiceID); err == nil && svc != nil {
		s.recompute(ctx, svc.ProviderID)
	}
	return nil
}

// ListByService returns all reviews of a service.
func (s *DefaultReviewService) ListByService(ctx context.Context, serviceID string) ([]models.Review, error) {
	return s.Reviews.ListByService(serviceID)
}

// rollupRating recomputes the service's denormalized rating fields from the
// full current review set. Recomputing from scratch makes concurrent rollups
// convergent under any interleaving.
func (s *DefaultReviewService) rollupRating(serviceID string) error {
	average, total, err := s.Reviews.RatingSummary(serviceID)
	if err != nil {
		return err
	}
	if total == 0 {
		return s.Services.UpdateRating(serviceID, 0, 0)
	}
	return s.Services.UpdateRating(serviceID, Round1(average), total)
}

// Round1 rounds a rating average to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func (s *DefaultReviewService) ownedReview(principal models.Principal, reviewID string) (*models.Review, error) {
	rev, err := s.Reviews.GetByID(reviewID)
	if err != nil {
		return nil, err
	}
	if rev == nil {
		return nil, utils.NewNotFoundError("review not found")
	}
	if rev.UserID != principal.ID && !principal.IsAdmin() {
		return nil, utils.NewForbiddenError("not the author of this review")
	}
	return rev, nil
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return utils.NewValidationError(fmt.Sprintf("rating must be between 1 and 5, got %d", rating))
	}
	return nil
}

func (s *DefaultReviewService) recompute(ctx context.Context, userID string) {
	if s.Verifier == nil {
		return
	}
	if err := s.Verifier.Recompute(ctx, userID); err != nil {
		utils.GetLogger().Warn("verification recompute failed",
			zap.String("userId", userID), zap.Error(err))
	}
}
