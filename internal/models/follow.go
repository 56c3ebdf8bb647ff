package models

import "time"

// Follow is a directed edge in the follow graph: FollowerID follows
// FolloweeID. Both the follower's "following" view and the followee's
// "followers" view are derived from this single row, so the two sides
// can never diverge.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;uniqueIndex:idx_follow_edge" json:"follower_id"`
	FolloweeID uint      `gorm:"not null;uniqueIndex:idx_follow_edge;index" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`

	Follower User `gorm:"foreignKey:FollowerID" json:"-"`
	Followee User `gorm:"foreignKey:FolloweeID" json:"-"`
}
