package models

import "time"

type Quote struct {
	BaseModel
	QuoteNumber        string      `gorm:"uniqueIndex;not null" json:"quote_number"`
	JobID              string      `gorm:"not null;index" json:"job_id"`
	TradeID            string      `gorm:"not null;index" json:"trade_id"`
	Amount             float64     `gorm:"type:decimal(10,2);not null" json:"amount"`
	Description        string      `gorm:"not null" json:"description"`
	EstimatedDuration  string      `json:"estimated_duration"`
	EstimatedStartDate *time.Time  `json:"estimated_start_date"`
	ValidityDays       int         `gorm:"default:30" json:"validity_days"`
	Status             QuoteStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	ApprovedBy         *string     `json:"approved_by"`
	ApprovedAt         *time.Time  `json:"approved_at"`
	RejectionReason    *string     `json:"rejection_reason"`
	Notes              string      `json:"notes"`

	Items []QuoteItem      `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Trade *TradeSpecialist `gorm:"foreignKey:TradeID" json:"trade,omitempty"`
}

// QuoteItem is a snapshot taken at quote creation; line totals are
// caller-supplied and never recomputed.
type QuoteItem struct {
	BaseModel
	QuoteID     string  `gorm:"not null;index" json:"quote_id"`
	Description string  `gorm:"not null" json:"description"`
	Quantity    float64 `gorm:"type:decimal(10,2);default:1" json:"quantity"`
	UnitPrice   float64 `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	TotalPrice  float64 `gorm:"type:decimal(10,2);not null" json:"total_price"`
	SortOrder   int     `gorm:"default:0" json:"sort_order"`
}
