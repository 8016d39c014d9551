package services

import (
	"errors"

	"maintdesk_backend/internal/appErrors"
	"maintdesk_backend/internal/auth"
	"maintdesk_backend/internal/repositories"
)

type NotificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// List returns the caller's most recent notifications.
func (s *NotificationService) List(identity auth.Identity, unreadOnly bool) ([]repositories.NotificationRow, error) {
	return s.notificationRepo.FindUserNotifications(identity.UserID, unreadOnly)
}

func (s *NotificationService) UnreadCount(identity auth.Identity) (int64, error) {
	return s.notificationRepo.UnreadCount(identity.UserID)
}

func (s *NotificationService) MarkAsRead(identity auth.Identity, id string) error {
	notification, err := s.notificationRepo.FindByID(id)
	if errors.Is(err, repositories.ErrNotificationNotFound) {
		return appErrors.ErrNotificationNotFound
	}
	if err != nil {
		return err
	}
	if notification.UserID != identity.UserID {
		return appErrors.ErrForbidden
	}
	return s.notificationRepo.MarkAsRead(id)
}

func (s *NotificationService) MarkAllAsRead(identity auth.Identity) error {
	return s.notificationRepo.MarkAllAsRead(identity.UserID)
}

func (s *NotificationService) Delete(identity auth.Identity, id string) error {
	notification, err := s.notificationRepo.FindByID(id)
	if errors.Is(err, repositories.ErrNotificationNotFound) {
		return appErrors.ErrNotificationNotFound
	}
	if err != nil {
		return err
	}
	if notification.UserID != identity.UserID {
		return appErrors.ErrForbidden
	}
	return s.notificationRepo.Delete(id)
}
