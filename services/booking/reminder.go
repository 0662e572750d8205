package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"locallink/models"

	"github.com/hibiken/asynq"
)

// TaskBookingReminder is the asynq task type for scheduled booking reminders.
const TaskBookingReminder = "booking:reminder"

// ReminderPayload is the task payload carrying the booking to remind about.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
}

// AsynqReminderScheduler queues reminder tasks on the shared redis-backed
// asynq queue, to be processed by the worker in cron/.
type AsynqReminderScheduler struct {
	Client *asynq.Client
	Lead   time.Duration
}

// Schedule enqueues a reminder at scheduledDate minus the lead time. A
// booking already inside the lead window gets no reminder.
func (s *AsynqReminderScheduler) Schedule(ctx context.Context, b models.Booking) error {
	processAt := b.ScheduledDate.Add(-s.Lead)
	if processAt.Before(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(ReminderPayload{BookingID: b.ID})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TaskBookingReminder, payload)
	if _, err := s.Client.EnqueueContext(ctx, task, asynq.ProcessAt(processAt)); err != nil {
		return fmt.Errorf("failed to enqueue booking reminder: %w", err)
	}
	return nil
}
