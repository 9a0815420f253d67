package models

import (
	"time"

	"gorm.io/datatypes"
)

// Registration represents a submitted membership-registration form.
// Rows are created by the public registration page and listed read-only
// in the admin panel.
type Registration struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	FullName        string         `gorm:"not null" json:"fullName"`
	DateOfBirth     datatypes.Date `gorm:"not null" json:"dateOfBirth"`
	Email           string         `gorm:"not null" json:"email"`
	MobileNumber    string         `gorm:"not null" json:"mobileNumber"`
	Gender          string         `gorm:"not null" json:"gender"`
	Occupation      string         `gorm:"not null" json:"occupation"`
	IDType          string         `gorm:"not null" json:"idType"`
	IDNumber        string         `gorm:"not null" json:"idNumber"`
	IssuedAuthority string         `gorm:"not null" json:"issuedAuthority"`
	IssuedPlace     string         `gorm:"not null" json:"issuedPlace"`
	IssuedDate      datatypes.Date `gorm:"not null" json:"issuedDate"`
	ExpiryDate      datatypes.Date `gorm:"not null" json:"expiryDate"`
	CreatedAt       time.Time      `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for GORM
func (Registration) TableName() string {
	return "registrations"
}
