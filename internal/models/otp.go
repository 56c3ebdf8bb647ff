package models

import "time"

// OneTimePassword is an email verification code issued at registration.
// All codes for a user are deleted when one of them is consumed; expired
// codes are left in place until then (no background sweep).
type OneTimePassword struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Code      string    `gorm:"not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the code is past its expiry at the given time.
func (o *OneTimePassword) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
