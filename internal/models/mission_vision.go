package models

import "time"

// MissionVision statement types.
const (
	StatementTypeMission = "mission"
	StatementTypeVision  = "vision"
)

// MissionVision represents one mission or vision statement shown on the
// public mission/vision section.
type MissionVision struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Type        string    `gorm:"not null;index" json:"type"`
	Description string    `gorm:"not null" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (MissionVision) TableName() string {
	return "mission_visions"
}

// IsValidStatementType reports whether t is one of the known statement types.
func IsValidStatementType(t string) bool {
	return t == StatementTypeMission || t == StatementTypeVision
}
