package models

import "time"

// Report statuses.
const (
	ReportPendingReview = "pending_review"
	ReportResolved      = "resolved"
)

// Report is a user complaint about a service or another user. At most one
// per (reporter, reportedService) pair; resolution notifies the reporter.
type Report struct {
	ID                string    `json:"id" bson:"id"`
	ReporterID        string    `json:"reporterId" bson:"reporterId"`
	ReportedServiceID string    `json:"reportedServiceId,omitempty" bson:"reportedServiceId,omitempty"`
	ReportedUserID    string    `json:"reportedUserId,omitempty" bson:"reportedUserId,omitempty"`
	Reason            string    `json:"reason" bson:"reason"`
	Details           string    `json:"details,omitempty" bson:"details,omitempty"`
	Status            string    `json:"status" bson:"status"`
	AdminResponse     string    `json:"adminResponse,omitempty" bson:"adminResponse,omitempty"`
	CreatedAt         time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt" bson:"updatedAt"`
}
