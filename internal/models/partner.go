package models

import "time"

// Partner represents a partner organisation shown in the partner slider.
type Partner struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Logo      string    `gorm:"not null" json:"logo"` // "/uploads/<filename>"
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Partner) TableName() string {
	return "partners"
}
