package models

import "time"

// Member types distinguish the two association bodies listed on the site.
const (
	MemberTypeBoard  = "board"
	MemberTypeBranch = "branch"
)

// Member represents a board or branch member of the association.
type Member struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `json:"title"` // honorific, e.g. "Dr."
	Name      string    `gorm:"not null" json:"name"`
	Position  string    `gorm:"not null" json:"position"`
	Type      string    `gorm:"not null;default:board;index" json:"type"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Member) TableName() string {
	return "members"
}

// IsValidMemberType reports whether t is one of the known member types.
func IsValidMemberType(t string) bool {
	return t == MemberTypeBoard || t == MemberTypeBranch
}
