// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Auth providers accepted for a user account.
const (
	AuthProviderLocal  = "local"
	AuthProviderGoogle = "google"
)

// User represents a user in the Linkora application.
// Username, Email and GoogleID are pointers so that accounts created by an
// external provider can leave them unset without tripping the unique indexes.
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"not null" json:"name"`
	Username     *string        `gorm:"uniqueIndex" json:"username"`
	Email        *string        `gorm:"uniqueIndex" json:"email"`
	Password     string         `gorm:"default:null" json:"-"`
	AuthProvider string         `gorm:"not null;default:local" json:"auth_provider"`
	GoogleID     *string        `gorm:"uniqueIndex" json:"-"`
	Avatar       string         `json:"avatar"`
	Bio          string         `gorm:"size:200" json:"bio"`
	IsVerified   bool           `gorm:"default:false;index" json:"is_verified"`
	IsActive     bool           `gorm:"default:true;index" json:"is_active"`
	LastLoginAt  *time.Time     `gorm:"index" json:"last_login_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Posts        []Post         `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// PublicProfile is the sanitized projection of a User returned to clients,
// augmented with aggregate counts.
type PublicProfile struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Username   string    `json:"username"`
	Avatar     string    `json:"avatar"`
	Bio        string    `json:"bio"`
	Followers  int64     `json:"followers"`
	Following  int64     `json:"following"`
	PostCount  int64     `json:"post_count"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}
