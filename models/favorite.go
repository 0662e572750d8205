package models

import "time"

// Favorite is a pure (user, service) wishlist join record with a unique
// compound index over the pair.
type Favorite struct {
	ID        string    `json:"id" bson:"id"`
	UserID    string    `json:"userId" bson:"userId"`
	ServiceID string    `json:"serviceId" bson:"serviceId"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
