package booking

import (
	"context"
	"time"

	"locallink/models"
)

// BookingInput is a seeker's request to book a service.
type BookingInput struct {
	ServiceID     string    `json:"serviceId" binding:"required"`
	ScheduledDate time.Time `json:"scheduledDate" binding:"required"`
	UserNotes     string    `json:"userNotes"`
}

// BookingService creates bookings and drives their status lifecycle:
// pending may become confirmed or cancelled, confirmed may become completed,
// and completed/cancelled are terminal.
type BookingService interface {
	Create(ctx context.Context, principal models.Principal, input BookingInput) (*models.Booking, error)
	UpdateStatus(ctx context.Context, principal models.Principal, bookingID, newStatus string) (*models.Booking, error)
	GetBooking(ctx context.Context, principal models.Principal, id string) (*models.Booking, error)
	MyBookings(ctx context.Context, principal models.Principal) ([]models.Booking, error)
	ProviderBookings(ctx context.Context, principal models.Principal) ([]models.Booking, error)
}

// ReminderScheduler queues a reminder notification ahead of a confirmed
// booking's scheduled date.
type ReminderScheduler interface {
	Schedule(ctx context.Context, b models.Booking) error
}
