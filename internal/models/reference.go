package models

// PriorityLevel and JobStatus are static ordered enumerations seeded at
// startup and read-only at runtime.

type PriorityLevel struct {
	BaseModel
	Name              string `gorm:"uniqueIndex;not null" json:"name"`
	Description       string `json:"description"`
	ResponseTimeHours int    `json:"response_time_hours"`
	ColorCode         string `gorm:"type:varchar(7)" json:"color_code"`
	SortOrder         int    `gorm:"default:0" json:"sort_order"`
}

type JobStatus struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
	SortOrder   int    `gorm:"default:0" json:"sort_order"`
	IsFinal     bool   `gorm:"default:false" json:"is_final"`
}
