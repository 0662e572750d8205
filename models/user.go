package models

import "time"

// User is an account on the platform: a seeker, a provider, or an admin.
// Credentials and reset flows are owned by the auth service; this side only
// reads identity and the verification flag.
type User struct {
	ID           string    `json:"id" bson:"id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PhoneNumber  string    `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	Role         string    `json:"role" bson:"role"`
	ProfileImage string    `json:"profileImage,omitempty" bson:"profileImage,omitempty"`
	IsVerified   bool      `json:"isVerified" bson:"isVerified"`
	IsActive     bool      `json:"isActive" bson:"isActive"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}
