package models

import (
	"time"

	"gorm.io/gorm"
)

// MaxPostContentLen caps post content length.
const MaxPostContentLen = 2000

// Post represents a post in the Linkora feed.
// Soft deletion goes through DeletedAt so deleted posts drop out of every
// read path but stay addressable through Unscoped queries.
type Post struct {
	ID      uint     `gorm:"primaryKey" json:"id"`
	UserID  uint     `gorm:"not null;index" json:"user_id"`
	User    User     `gorm:"foreignKey:UserID" json:"author"`
	Content string   `gorm:"type:text" json:"content"`
	Images  []string `gorm:"serializer:json" json:"images"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->" json:"comments_count"`
	// Liked indicates whether the current requesting user liked this post (computed)
	Liked     bool           `gorm:"->" json:"liked"`
	IsEdited  bool           `gorm:"default:false" json:"is_edited"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
