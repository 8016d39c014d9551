package models

import "time"

type TradeSpecialist struct {
	BaseModel
	UserID             string     `gorm:"not null;uniqueIndex" json:"user_id"`
	CompanyName        string     `gorm:"not null" json:"company_name"`
	ABN                string     `json:"abn"`
	LicenseNumber      string     `json:"license_number"`
	InsuranceExpiry    *time.Time `json:"insurance_expiry"`
	AddressLine1       string     `json:"address_line1"`
	AddressLine2       string     `json:"address_line2"`
	City               string     `json:"city"`
	State              string     `json:"state"`
	PostalCode         string     `json:"postal_code"`
	ServiceAreas       string     `json:"service_areas"`
	Rating             float64    `gorm:"type:decimal(3,2);default:0.00" json:"rating"`
	TotalJobsCompleted int        `gorm:"default:0" json:"total_jobs_completed"`
	IsVerified         bool       `gorm:"default:false" json:"is_verified"`
	IsActive           bool       `gorm:"default:true" json:"is_active"`
	Notes              string     `json:"notes"`

	Categories []Category `gorm:"many2many:trade_categories" json:"categories,omitempty"`
}

// TradeCategory is the join row linking a trade to a category it services.
type TradeCategory struct {
	TradeSpecialistID string `gorm:"primaryKey" json:"trade_id"`
	CategoryID        string `gorm:"primaryKey" json:"category_id"`
}
