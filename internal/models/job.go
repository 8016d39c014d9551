package models

import "time"

type Job struct {
	BaseModel
	JobNumber       string     `gorm:"uniqueIndex;not null" json:"job_number"`
	CustomerID      string     `gorm:"not null;index" json:"customer_id"`
	CategoryID      string     `gorm:"not null" json:"category_id"`
	PriorityID      string     `gorm:"not null" json:"priority_id"`
	StatusID        string     `gorm:"not null;index" json:"status_id"`
	Title           string     `gorm:"not null" json:"title"`
	Description     string     `gorm:"not null" json:"description"`
	LocationAddress string     `json:"location_address"`
	PreferredDate   *time.Time `json:"preferred_date"`
	PreferredTime   string     `json:"preferred_time"`
	AssignedStaffID *string    `gorm:"index" json:"assigned_staff_id"`
	AssignedTradeID *string    `gorm:"index" json:"assigned_trade_id"`
	EstimatedCost   *float64   `gorm:"type:decimal(10,2)" json:"estimated_cost"`
	FinalCost       *float64   `gorm:"type:decimal(10,2)" json:"final_cost"`
	ScheduledDate   *time.Time `json:"scheduled_date"`
	CompletedDate   *time.Time `json:"completed_date"`
	CustomerNotes   string     `json:"customer_notes"`
	InternalNotes   string     `json:"internal_notes"`

	Attachments []JobAttachment `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"attachments,omitempty"`
	Quotes      []Quote         `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"quotes,omitempty"`
	History     []JobHistory    `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"history,omitempty"`
}

type JobAttachment struct {
	BaseModel
	JobID       string `gorm:"not null;index" json:"job_id"`
	FileName    string `gorm:"not null" json:"file_name"`
	FilePath    string `gorm:"not null" json:"file_path"`
	FileType    string `json:"file_type"`
	FileSize    int64  `json:"file_size"`
	UploadedBy  string `gorm:"not null" json:"uploaded_by"`
	Description string `json:"description"`
}

// JobHistory is the append-only audit trail. Rows are never updated.
type JobHistory struct {
	BaseModel
	JobID      string `gorm:"not null;index" json:"job_id"`
	ChangedBy  string `gorm:"not null" json:"changed_by"`
	ChangeType string `gorm:"not null" json:"change_type"`
	OldValue   string `json:"old_value"`
	NewValue   string `json:"new_value"`
	Notes      string `json:"notes"`
}
