package repositories

import (
	"errors"
	"time"

	"maintdesk_backend/internal/models"

	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Listing is capped to the most recent notifications; older ones are only
// reachable after the newer ones are read or deleted.
const notificationListLimit = 50

// NotificationRow is a notification joined with its job number, when any.
type NotificationRow struct {
	models.Notification
	JobNumber string `json:"job_number"`
}

type NotificationRepository interface {
	WithTx(tx *gorm.DB) NotificationRepository

	Create(notification *models.Notification) error
	CreateBulk(notifications []*models.Notification) error
	FindByID(id string) (*models.Notification, error)
	FindUserNotifications(userID string, unreadOnly bool) ([]NotificationRow, error)
	MarkAsRead(id string) error
	MarkEmailSent(id string) error
	MarkAllAsRead(userID string) error
	UnreadCount(userID string) (int64, error)
	Delete(id string) error
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) WithTx(tx *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: tx}
}

func (r *NotificationRepositoryImpl) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) CreateBulk(notifications []*models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return r.db.Create(notifications).Error
}

func (r *NotificationRepositoryImpl) FindByID(id string) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotificationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepositoryImpl) FindUserNotifications(userID string, unreadOnly bool) ([]NotificationRow, error) {
	q := r.db.Table("notifications").
		Select("notifications.*, jobs.job_number").
		Joins("LEFT JOIN jobs ON jobs.id = notifications.job_id").
		Where("notifications.user_id = ?", userID)

	if unreadOnly {
		q = q.Where("notifications.is_read = ?", false)
	}

	var rows []NotificationRow
	err := q.Order("notifications.created_at DESC").
		Limit(notificationListLimit).
		Scan(&rows).Error
	return rows, err
}

func (r *NotificationRepositoryImpl) MarkAsRead(id string) error {
	now := time.Now()
	return r.db.Model(&models.Notification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_read": true, "read_at": now}).Error
}

func (r *NotificationRepositoryImpl) MarkEmailSent(id string) error {
	return r.db.Model(&models.Notification{}).
		Where("id = ?", id).
		Update("sent_email", true).Error
}

func (r *NotificationRepositoryImpl) MarkAllAsRead(userID string) error {
	now := time.Now()
	return r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": now}).Error
}

func (r *NotificationRepositoryImpl) UnreadCount(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Notification{}, "id = ?", id).Error
}
