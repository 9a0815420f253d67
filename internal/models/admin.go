package models

import "time"

// Admin represents an administrator account for the admin panel.
// The site runs with a single shared admin account, but nothing here
// assumes there is exactly one row.
type Admin struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Email            string     `gorm:"not null;uniqueIndex" json:"email"`
	PasswordHash     string     `gorm:"not null" json:"-"`
	ResetToken       *string    `gorm:"uniqueIndex" json:"-"` // opaque 64-hex-char reset token, nil when no reset is pending
	ResetTokenExpiry *time.Time `json:"-"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Admin) TableName() string {
	return "admins"
}

// HasPendingReset reports whether a reset token is currently stored.
// ResetToken and ResetTokenExpiry are written as a pair: both nil or both set.
func (a *Admin) HasPendingReset() bool {
	return a.ResetToken != nil && a.ResetTokenExpiry != nil
}

// ResetTokenValidAt reports whether the stored reset token may still be
// consumed at the given instant.
func (a *Admin) ResetTokenValidAt(now time.Time) bool {
	return a.HasPendingReset() && a.ResetTokenExpiry.After(now)
}
