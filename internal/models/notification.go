package models

import (
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	UserID    string         `gorm:"not null;index:idx_notifications_user;index:idx_notifications_unread,priority:1" json:"user_id"`
	JobID     *string        `json:"job_id"`
	Type      string         `gorm:"not null" json:"type"`
	Title     string         `gorm:"not null" json:"title"`
	Message   string         `json:"message"`
	Data      datatypes.JSON `json:"data,omitempty"` // {"job_id": "...", "quote_id": "..."}
	IsRead    bool           `gorm:"default:false;index:idx_notifications_unread,priority:2" json:"is_read"`
	SentEmail bool           `gorm:"default:false" json:"sent_email"`
	ReadAt    *time.Time     `json:"read_at"`
}
