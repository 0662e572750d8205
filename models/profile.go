package models

import "time"

// Profile is the one-to-one provider-facing cache of a user. The services
// list is a denormalized back-reference maintained with $addToSet/$pull on
// service create/delete, and isVerified mirrors User.IsVerified.
type Profile struct {
	ID                 string    `json:"id" bson:"id"`
	UserID             string    `json:"userId" bson:"userId"`
	Name               string    `json:"name" bson:"name"`
	Image              string    `json:"image,omitempty" bson:"image,omitempty"`
	BusinessName       string    `json:"businessName,omitempty" bson:"businessName,omitempty"`
	AvailabilityStatus string    `json:"availabilityStatus" bson:"availabilityStatus"`
	Services           []string  `json:"services" bson:"services"`
	IsVerified         bool      `json:"isVerified" bson:"isVerified"`
	CreatedAt          time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt" bson:"updatedAt"`
}
