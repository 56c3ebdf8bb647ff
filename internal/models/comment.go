package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents a comment on a post.
// DeletedAt doubles as the deletion timestamp for soft-deleted comments.
type Comment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	PostID    uint           `gorm:"not null;index" json:"post_id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	Post      Post           `gorm:"foreignKey:PostID" json:"-"`
	User      User           `gorm:"foreignKey:UserID" json:"user"`
	Text      string         `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
