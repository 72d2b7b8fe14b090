package jobqueue

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/subkeeper/subkeeper/app/models"
	"github.com/subkeeper/subkeeper/app/repository"
	"github.com/subkeeper/subkeeper/internal/pkg/database"
	"github.com/subkeeper/subkeeper/internal/pkg/mail"
	"github.com/subkeeper/subkeeper/internal/pkg/metrics/counter"
)

// reminderDedupWindow suppresses duplicate notifications for the same
// subscription within a single billing run per day.
const reminderDedupWindow = 24 * time.Hour

// processPaymentReminderJob delivers a payment reminder for a subscription:
// it creates an in-app notification and, if the user opted in, sends an
// email. Failures on the email path are logged but do not fail the job,
// since the notification row is the primary delivery.
func (q *Queue) processPaymentReminderJob(job *Job) error {
	payload, err := PaymentReminderJobPayloadFromMap(job.Payload)
	if err != nil {
		return fmt.Errorf("invalid payment reminder payload: %w", err)
	}

	repos := repository.GetGlobalRepositories()

	user, err := repos.User.GetByID(payload.UserID)
	if err != nil {
		return fmt.Errorf("failed to load user %d: %w", payload.UserID, err)
	}
	if !user.IsActive() {
		log.Infof("[JobQueue] Skipping reminder for inactive user %d", user.ID)
		return nil
	}

	settings, err := models.GetOrCreateUserSettings(database.GetDB(), user.ID)
	if err != nil {
		return fmt.Errorf("failed to load settings for user %d: %w", user.ID, err)
	}
	if !settings.RemindersEnabled {
		log.Infof("[JobQueue] Reminders disabled for user %d, skipping", user.ID)
		return nil
	}

	// Skip if we already notified for this subscription recently
	exists, err := repos.Notification.ExistsForReferenceSince(user.ID, payload.SubscriptionID, time.Now().Add(-reminderDedupWindow))
	if err != nil {
		return fmt.Errorf("failed to check existing notifications: %w", err)
	}
	if exists {
		log.Infof("[JobQueue] Reminder for subscription %d already sent, skipping", payload.SubscriptionID)
		return nil
	}

	content := reminderContent(payload)

	notification := &models.Notification{
		UserID:      user.ID,
		Type:        models.NotificationTypePaymentReminder,
		Content:     content,
		ReferenceID: payload.SubscriptionID,
	}
	if err := repos.Notification.Create(notification); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	recipient := settings.NotifyEmail
	if recipient == "" {
		recipient = user.Email
	}
	subject := fmt.Sprintf("Payment reminder: %s", payload.SubscriptionName)
	if err := mail.SendMail(recipient, subject, content); err != nil {
		log.Errorf("[JobQueue] Failed to send reminder mail to user %d: %v", user.ID, err)
	}

	if err := counter.AddReminderSent(payload.SubscriptionID); err != nil {
		log.Errorf("[JobQueue] Failed to count reminder for subscription %d: %v", payload.SubscriptionID, err)
	}

	log.Infof("[JobQueue] Payment reminder delivered for subscription %d (user %d)", payload.SubscriptionID, user.ID)
	return nil
}

func reminderContent(p *PaymentReminderJobPayload) string {
	switch {
	case p.DaysTillPayment <= 0:
		return fmt.Sprintf("Your subscription %q is due today (%s).", p.SubscriptionName, p.NextPaymentDate)
	case p.DaysTillPayment == 1:
		return fmt.Sprintf("Your subscription %q is due tomorrow (%s).", p.SubscriptionName, p.NextPaymentDate)
	default:
		return fmt.Sprintf("Your subscription %q is due in %d days (%s).", p.SubscriptionName, p.DaysTillPayment, p.NextPaymentDate)
	}
}
