package notification

import (
	"context"
	"fmt"

	notificationRepo "locallink/database/repository/notification"
	"locallink/models"
	"locallink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo notificationRepo.NotificationRepository
}

// Emit persists a notification record addressed to its recipient.
func (s *DefaultNotificationService) Emit(ctx context.Context, n models.Notification) error {
	if n.RecipientID == "" {
		return fmt.Errorf("notification emit: recipient is required")
	}
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	n.IsRead = false

	if err := s.Repo.Create(&n); err != nil {
		return fmt.Errorf("notification emit: %w", err)
	}
	utils.GetLogger().Debug("notification emitted",
		zap.String("recipient", n.RecipientID),
		zap.String("type", n.Type),
	)
	return nil
}

// List returns the caller's notifications, newest first.
func (s *DefaultNotificationService) List(ctx context.Context, principal models.Principal, limit int64) ([]models.Notification, error) {
	return s.Repo.ListByRecipient(principal.ID, limit)
}

// UnreadCount returns how many of the caller's notifications are unread.
func (s *DefaultNotificationService) UnreadCount(ctx context.Context, principal models.Principal) (int64, error) {
	return s.Repo.CountUnread(principal.ID)
}

// MarkRead flags one of the caller's notifications as read.
func (s *DefaultNotificationService) MarkRead(ctx context.Context, principal models.Principal, id string) error {
	matched, err := s.Repo.MarkRead(id, principal.ID)
	if err != nil {
		return err
	}
	if !matched {
		return utils.NewNotFoundError("notification not found")
	}
	return nil
}

// MarkAllRead flags all of the caller's notifications as read.
func (s *DefaultNotificationService) MarkAllRead(ctx context.Context, principal models.Principal) error {
	return s.Repo.MarkAllRead(principal.ID)
}

// Delete removes one of the caller's notifications.
func (s *DefaultNotificationService) Delete(ctx context.Context, principal models.Principal, id string) error {
	matched, err := s.Repo.Delete(id, principal.ID)
	if err != nil {
		return err
	}
	if !matched {
		return utils.NewNotFoundError("notification not found")
	}
	return nil
}
