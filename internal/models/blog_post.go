package models

import "time"

// BlogPost represents a news article shown on the public news section
// and managed from the admin blog page.
type BlogPost struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"not null" json:"content"`
	Image     *string   `json:"image,omitempty"` // stored as "/uploads/<filename>", nil when the post has no image
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (BlogPost) TableName() string {
	return "blog_posts"
}
