package models

type Customer struct {
	BaseModel
	UserID           string           `gorm:"not null;uniqueIndex" json:"user_id"`
	OrganizationName string           `json:"organization_name"`
	OrganizationType OrganizationType `gorm:"type:varchar(50);default:'residential'" json:"organization_type"`
	AddressLine1     string           `json:"address_line1"`
	AddressLine2     string           `json:"address_line2"`
	City             string           `json:"city"`
	State            string           `json:"state"`
	PostalCode       string           `json:"postal_code"`
	Country          string           `gorm:"default:'Australia'" json:"country"`
	BillingEmail     string           `json:"billing_email"`
	Notes            string           `json:"notes"`
}
