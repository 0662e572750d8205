package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "locallink/database/repository/booking"
	serviceRepo "locallink/database/repository/service"
	"locallink/models"
	"locallink/services/notification"
	"locallink/services/verification"
	"locallink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Bookings  bookingRepo.BookingRepository
	Services  serviceRepo.ServiceRepository
	Notifier  notification.NotificationService
	Verifier  verification.VerificationService
	Reminders ReminderScheduler
}

// Create books a service for the calling seeker. The provider is captured
// from the service at this instant and the status is forced to pending
// regardless of input.
func (s *DefaultBookingService) Create(ctx context.Context, principal models.Principal, input BookingInput) (*models.Booking, error) {
	if principal.Role != models.RoleSeeker {
		return nil, utils.NewForbiddenError("only seekers can create bookings")
	}
	if input.ScheduledDate.Before(time.Now()) {
		return nil, utils.NewValidationError("scheduled date must be in the future")
	}

	svc, err := s.Services.GetByID(input.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, utils.NewNotFoundError("service not found")
	}
	if !svc.IsActive {
		return nil, utils.NewValidationError("service is not accepting bookings")
	}

	b := &models.Booking{
		ID:            uuid.New().String(),
		UserID:        principal.ID,
		ServiceID:     svc.ID,
		ProviderID:    svc.ProviderID,
		ScheduledDate: input.ScheduledDate,
		Status:        models.BookingPending,
		UserNotes:     input.UserNotes,
	}
	if err := s.Bookings.Create(b); err != nil {
		return nil, err
	}

	s.emit(ctx, models.Notification{
		RecipientID:    b.ProviderID,
		SenderID:       b.UserID,
		Type:           models.NotificationBookingCreated,
		Title:          "New booking request",
		Message:        fmt.Sprintf("You have a new booking request for %q.", svc.Title),
		RelatedBooking: b.ID,
		RelatedService: b.ServiceID,
	})
	return b, nil
}

// UpdateStatus transitions a booking along the state machine. Only the
// booking's provider or an admin may transition, and the write is
// conditional on the status the caller saw: a concurrent transition makes
// the precondition fail and surfaces as a conflict instead of silently
// overwriting.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, principal models.Principal, bookingID, newStatus string) (*models.Booking, error) {
	if !models.ValidBookingStatus(newStatus) {
		return nil, utils.NewValidationError("invalid booking status")
	}

	b, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, utils.NewNotFoundError("booking not found")
	}
	if b.ProviderID != principal.ID && !principal.IsAdmin() {
		return nil, utils.NewForbiddenError("only the booking's provider can update its status")
	}
	if !models.CanTransitionBooking(b.Status, newStatus) {
		return nil, utils.NewValidationError(
			fmt.Sprintf("cannot transition booking from %s to %s", b.Status, newStatus))
	}

	matched, err := s.Bookings.UpdateStatusIf(bookingID, b.Status, newStatus)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, utils.NewConflictError("booking status changed concurrently, reload and retry")
	}
	b.Status = newStatus
	b.UpdatedAt = time.Now()

	// Status is persisted; everything below is best-effort.
	s.notifySeeker(ctx, *b, newStatus)

	switch newStatus {
	case models.BookingConfirmed:
		if s.Reminders != nil {
			if err := s.Reminders.Schedule(ctx, *b); err != nil {
				utils.GetLogger().Warn("failed to schedule booking reminder",
					zap.String("bookingId", b.ID), zap.Error(err))
			}
		}
	case models.BookingCompleted:
		s.recompute(ctx, b.UserID)
		s.recompute(ctx, b.ProviderID)
	}
	return b, nil
}

// GetBooking returns a booking visible to its seeker, its provider, or an admin.
func (s *DefaultBookingService) GetBooking(ctx context.Context, principal models.Principal, id string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, utils.NewNotFoundError("booking not found")
	}
	if b.UserID != principal.ID && b.ProviderID != principal.ID && !principal.IsAdmin() {
		return nil, utils.NewForbiddenError("not a party to this booking")
	}
	return b, nil
}

// MyBookings lists the caller's bookings as a seeker.
func (s *DefaultBookingService) MyBookings(ctx context.Context, principal models.Principal) ([]models.Booking, error) {
	return s.Bookings.ListByUser(principal.ID)
}

// ProviderBookings lists the caller's incoming bookings as a provider.
func (s *DefaultBookingService) ProviderBookings(ctx context.Context, principal models.Principal) ([]models.Booking, error) {
	return s.Bookings.ListByProvider(principal.ID)
}

// notifySeeker tells the seeker about a status change.
func (s *DefaultBookingService) notifySeeker(ctx context.Context, b models.Booking, status string) {
	var notifType, title, message string
	switch status {
	case models.BookingConfirmed:
		notifType = models.NotificationBookingConfirmed
		title = "Booking confirmed"
		message = "Your booking has been confirmed by the provider."
	case models.BookingCancelled:
		notifType = models.NotificationBookingCancelled
		title = "Booking cancelled"
		message = "Your booking has been cancelled."
	case models.BookingCompleted:
		notifType = models.NotificationBookingCompleted
		title = "Booking completed"
		message = "Your booking has been marked completed. You can now leave a review."
	default:
		return
	}

	s.emit(ctx, models.Notification{
		RecipientID:    b.UserID,
		SenderID:       b.ProviderID,
		Type:           notifType,
		Title:          title,
		Message:        message,
		RelatedBooking: b.ID,
		RelatedService: b.ServiceID,
	})
}

// emit dispatches a notification fire-and-forget; failures are logged and
// never fail the surrounding operation.
func (s *DefaultBookingService) emit(ctx context.Context, n models.Notification) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Emit(ctx, n); err != nil {
		utils.GetLogger().Warn("notification dispatch failed",
			zap.String("type", n.Type),
			zap.String("recipient", n.RecipientID),
			zap.Error(err),
		)
	}
}

func (s *DefaultBookingService) recompute(ctx context.Context, userID string) {
	if s.Verifier == nil {
		return
	}
	if err := s.Verifier.Recompute(ctx, userID); err != nil {
		utils.GetLogger().Warn("verification recompute failed",
			zap.String("userId", userID), zap.Error(err))
	}
}
