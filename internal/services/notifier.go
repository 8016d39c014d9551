package services

import (
	"encoding/json"

	"maintdesk_backend/internal/email"
	"maintdesk_backend/internal/logger"
	"maintdesk_backend/internal/models"
	"maintdesk_backend/internal/repositories"

	"gorm.io/datatypes"
)

// notificationData marshals the structured payload clients use to deep-link
// from a notification to the record it references.
func notificationData(payload map[string]interface{}) datatypes.JSON {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil
	}
	return datatypes.JSON(data)
}

// Notifier delivers best-effort emails for notification rows already
// committed by a service transaction. Delivery failures are logged and
// never surfaced to the request.
type Notifier struct {
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
	provider         email.Provider
	enabled          bool
}

func NewNotifier(userRepo repositories.UserRepository, notificationRepo repositories.NotificationRepository, provider email.Provider, enabled bool) *Notifier {
	return &Notifier{
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		provider:         provider,
		enabled:          enabled,
	}
}

// Dispatch sends one email per committed notification and flips sent_email
// on success.
func (n *Notifier) Dispatch(notifications ...*models.Notification) {
	if !n.enabled {
		return
	}

	for _, notification := range notifications {
		user, err := n.userRepo.FindByID(notification.UserID)
		if err != nil {
			logger.Warn("notification email skipped, user lookup failed",
				"notification_id", notification.ID, "error", err)
			continue
		}
		if err := n.provider.Send(user.Email, notification.Title, notification.Message); err != nil {
			logger.Warn("notification email failed",
				"notification_id", notification.ID, "to", user.Email, "error", err)
			continue
		}
		if err := n.notificationRepo.MarkEmailSent(notification.ID); err != nil {
			logger.Warn("failed to flag notification email as sent",
				"notification_id", notification.ID, "error", err)
		}
	}
}
