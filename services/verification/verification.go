// Package verification derives the trust badge from activity counts. The
// recompute is invoked explicitly by the mutations that change the counted
// quantities (booking completion, review create/delete) rather than through
// hidden persistence hooks, so the dependency is visible in the call graph.
package verification

import (
	"context"
	"fmt"

	bookingRepo "locallink/database/repository/booking"
	reviewRepo "locallink/database/repository/review"
	serviceRepo "locallink/database/repository/service"
	userRepo "locallink/database/repository/user"
	"locallink/models"
	"locallink/utils"

	"go.uber.org/zap"
)

// Thresholds, inclusive.
const (
	SeekerBookingThreshold   = 3
	SeekerReviewThreshold    = 3
	ProviderBookingThreshold = 5
	ProviderReviewThreshold  = 5
)

// SeekerVerified decides a seeker's badge from total bookings made and
// reviews written.
func SeekerVerified(bookings, reviews int64) bool {
	return bookings >= SeekerBookingThreshold && reviews >= SeekerReviewThreshold
}

// ProviderVerified decides a provider's badge from completed bookings
// fulfilled and reviews received across their services.
func ProviderVerified(completedBookings, reviewsOnServices int64) bool {
	return completedBookings >= ProviderBookingThreshold && reviewsOnServices >= ProviderReviewThreshold
}

// VerificationService recomputes a user's verification flag.
type VerificationService interface {
	Recompute(ctx context.Context, userID string) error
}

// DefaultVerificationService is the production implementation.
type DefaultVerificationService struct {
	Users    userRepo.UserRepository
	Bookings bookingRepo.BookingRepository
	Reviews  reviewRepo.ReviewRepository
	Services serviceRepo.ServiceRepository
}

// Recompute re-evaluates the role-dependent verification thresholds and
// writes User.isVerified (mirrored onto the profile) only when the result
// differs from the stored flag.
func (s *DefaultVerificationService) Recompute(ctx context.Context, userID string) error {
	user, err := s.Users.GetByID(userID)
	if err != nil {
		return fmt.Errorf("verification recompute: %w", err)
	}
	if user == nil {
		return utils.NewNotFoundError("user not found")
	}

	var verified bool
	switch user.Role {
	case models.RoleSeeker:
		bookings, err := s.Bookings.CountByUser(userID)
		if err != nil {
			return fmt.Errorf("verification recompute: %w", err)
		}
		reviews, err := s.Reviews.CountByUser(userID)
		if err != nil {
			return fmt.Errorf("verification recompute: %w", err)
		}
		verified = SeekerVerified(bookings, reviews)
	case models.RoleProvider:
		completed, err := s.Bookings.CountCompletedByProvider(userID)
		if err != nil {
			return fmt.Errorf("verification recompute: %w", err)
		}
		serviceIDs, err := s.Services.IDsByProvider(userID)
		if err != nil {
			return fmt.Errorf("verification recompute: %w", err)
		}
		reviews, err := s.Reviews.CountByServiceIDs(serviceIDs)
		if err != nil {
			return fmt.Errorf("verification recompute: %w", err)
		}
		verified = ProviderVerified(completed, reviews)
	default:
		// Admins carry no activity badge.
		return nil
	}

	if verified == user.IsVerified {
		return nil
	}

	if err := s.Users.SetVerified(userID, verified); err != nil {
		return fmt.Errorf("verification recompute: %w", err)
	}
	utils.GetLogger().Info("verification flag changed",
		zap.String("userId", userID),
		zap.String("role", user.Role),
		zap.Bool("verified", verified),
	)
	return nil
}
