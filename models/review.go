package models

import "time"

// Review is a seeker's rating of a service. One review per (service, user)
// pair, and only after a completed booking for that pair.
type Review struct {
	ID         string    `json:"id" bson:"id"`
	ServiceID  string    `json:"serviceId" bson:"serviceId"`
	UserID     string    `json:"userId" bson:"userId"`
	Rating     int       `json:"rating" bson:"rating"`
	Comment    string    `json:"comment,omitempty" bson:"comment,omitempty"`
	IsApproved bool      `json:"isApproved" bson:"isApproved"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt"`
}
