package models

// Category is soft-disabled via IsActive, never deleted: jobs reference it.
type Category struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
	CreatedBy   string `json:"created_by"`
}
