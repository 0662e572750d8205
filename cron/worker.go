package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"locallink/config"
	bookingRepo "locallink/database/repository/booking"
	"locallink/models"
	"locallink/services/booking"
	"locallink/services/notification"
	"locallink/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the asynq worker that delivers booking reminders.
// It consumes tasks enqueued by the booking service's reminder scheduler.
func InitReminderWorker(bookings bookingRepo.BookingRepository, notifier notification.NotificationService) *asynq.Server {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}

	srv := asynq.NewServer(redisOpts, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			"default": 1,
		},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(booking.TaskBookingReminder, handleReminderTask(bookings, notifier))

	go func() {
		logger := utils.GetLogger()
		logger.Info("starting booking reminder worker",
			zap.String("redisAddr", config.AppConfig.RedisAddr))
		if err := srv.Run(mux); err != nil {
			logger.Error("booking reminder worker stopped", zap.Error(err))
		}
	}()
	return srv
}

// handleReminderTask resolves the booking at delivery time and only emits a
// reminder while the booking is still confirmed and still in the future.
// Cancellations between scheduling and delivery silently drop the reminder.
func handleReminderTask(bookings bookingRepo.BookingRepository, notifier notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p booking.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			return fmt.Errorf("invalid reminder payload: %w", err)
		}
		logger := utils.GetLogger()

		b, err := bookings.GetByID(p.BookingID)
		if err != nil {
			return fmt.Errorf("failed to load booking %s: %w", p.BookingID, err)
		}
		if b == nil {
			logger.Warn("reminder for missing booking", zap.String("bookingId", p.BookingID))
			return nil
		}
		if b.Status != models.BookingConfirmed || b.ScheduledDate.Before(time.Now()) {
			return nil
		}

		err = notifier.Emit(ctx, models.Notification{
			RecipientID:    b.UserID,
			Type:           models.NotificationBookingReminder,
			Title:          "Upcoming booking reminder",
			Message:        fmt.Sprintf("Your booking is scheduled for %s.", b.ScheduledDate.Format("Mon, 2 Jan 2006 15:04")),
			RelatedBooking: b.ID,
			RelatedService: b.ServiceID,
		})
		if err != nil {
			return fmt.Errorf("failed to emit booking reminder: %w", err)
		}
		return nil
	}
}
