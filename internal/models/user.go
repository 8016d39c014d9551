package models

import "time"

type User struct {
	BaseModel
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         UserRole   `gorm:"type:varchar(20);not null;index" json:"role"`
	FirstName    string     `gorm:"not null" json:"first_name"`
	LastName     string     `gorm:"not null" json:"last_name"`
	Phone        string     `json:"phone"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	LastLogin    *time.Time `json:"last_login"`

	// Relations: exactly one profile for non-staff accounts.
	Customer *Customer        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"customer,omitempty"`
	Trade    *TradeSpecialist `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"trade,omitempty"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
