package models

import "time"

// Booking statuses.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// ValidBookingStatus reports whether s is a known booking status.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// CanTransitionBooking reports whether a booking may move from one status to
// another. Pending bookings may be confirmed or cancelled, confirmed bookings
// may be completed; completed and cancelled are terminal.
func CanTransitionBooking(from, to string) bool {
	switch from {
	case BookingPending:
		return to == BookingConfirmed || to == BookingCancelled
	case BookingConfirmed:
		return to == BookingCompleted
	}
	return false
}

// Booking records a seeker's request for a service. ProviderID is copied
// from the service at creation time and never re-synced afterwards, so a
// later provider change on the service leaves existing bookings untouched.
// Bookings are never deleted; cancellation is a status, not a removal.
type Booking struct {
	ID            string    `json:"id" bson:"id"`
	UserID        string    `json:"userId" bson:"userId"`
	ServiceID     string    `json:"serviceId" bson:"serviceId"`
	ProviderID    string    `json:"providerId" bson:"providerId"`
	ScheduledDate time.Time `json:"scheduledDate" bson:"scheduledDate"`
	Status        string    `json:"status" bson:"status"`
	UserNotes     string    `json:"userNotes,omitempty" bson:"userNotes,omitempty"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`
}
