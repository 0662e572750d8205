package models

import "time"

// Notification types emitted by the system.
const (
	NotificationBookingCreated   = "booking_created"
	NotificationBookingConfirmed = "booking_confirmed"
	NotificationBookingCancelled = "booking_cancelled"
	NotificationBookingCompleted = "booking_completed"
	NotificationBookingReminder  = "booking_reminder"
	NotificationReportResolved   = "report_resolved"
)

// Notification is a persisted inbox entry. Created by system side effects
// and only ever read, marked, or deleted by its recipient.
type Notification struct {
	ID             string    `json:"id" bson:"id"`
	RecipientID    string    `json:"recipientId" bson:"recipientId"`
	SenderID       string    `json:"senderId,omitempty" bson:"senderId,omitempty"`
	Type           string    `json:"type" bson:"type"`
	Title          string    `json:"title" bson:"title"`
	Message        string    `json:"message" bson:"message"`
	RelatedBooking string    `json:"relatedBooking,omitempty" bson:"relatedBooking,omitempty"`
	RelatedService string    `json:"relatedService,omitempty" bson:"relatedService,omitempty"`
	IsRead         bool      `json:"isRead" bson:"isRead"`
	Link           string    `json:"link,omitempty" bson:"link,omitempty"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
}
