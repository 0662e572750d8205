package notification

import (
	"context"

	"locallink/models"
)

// NotificationService creates notification records and serves the inbox.
// Emission is best-effort: callers treat a failed Emit as a logged warning,
// never as a reason to roll back the operation that triggered it.
type NotificationService interface {
	Emit(ctx context.Context, n models.Notification) error

	List(ctx context.Context, principal models.Principal, limit int64) ([]models.Notification, error)
	UnreadCount(ctx context.Context, principal models.Principal) (int64, error)
	MarkRead(ctx context.Context, principal models.Principal, id string) error
	MarkAllRead(ctx context.Context, principal models.Principal) error
	Delete(ctx context.Context, principal models.Principal, id string) error
}
