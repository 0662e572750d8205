package bookingRepo

import "locallink/models"

// BookingRepository defines data access for bookings. Bookings are never
// deleted; cancellation is a status transition.
type BookingRepository interface {
	Create(b *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	ListByUser(userID string) ([]models.Booking, error)
	ListByProvider(providerID string) ([]models.Booking, error)

	// UpdateStatusIf performs a conditional status transition: the update
	// only applies while the booking still holds the expected current
	// status. Returns false when the precondition did not match.
	UpdateStatusIf(id, expected, next string) (bool, error)

	CountByUser(userID string) (int64, error)
	CountCompletedByProvider(providerID string) (int64, error)
	HasCompleted(userID, serviceID string) (bool, error)
	CountByStatus(status string) (int64, error)
}
