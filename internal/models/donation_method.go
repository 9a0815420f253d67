package models

import "time"

// DonationMethod represents one way to donate (bank account or mobile
// wallet) shown on the donate page.
type DonationMethod struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	AccountName   string    `gorm:"not null" json:"accountName"`
	AccountNumber string    `gorm:"not null" json:"accountNumber"`
	LogoURL       string    `gorm:"not null" json:"logoUrl"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for GORM
func (DonationMethod) TableName() string {
	return "donation_methods"
}
