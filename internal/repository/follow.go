package repository

import (
	"context"

	"linkora/internal/models"

	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow graph operations
type FollowRepository interface {
	Follow(ctx context.Context, followerID, followeeID uint) error
	Unfollow(ctx context.Context, followerID, followeeID uint) error
	Exists(ctx context.Context, followerID, followeeID uint) (bool, error)
	CountFollowers(ctx context.Context, userID uint) (int64, error)
	CountFollowing(ctx context.Context, userID uint) (int64, error)
}

// followRepository implements FollowRepository
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Follow(ctx context.Context, followerID, followeeID uint) error {
	// Use INSERT ... ON CONFLICT DO NOTHING so concurrent toggles cannot
	// create a duplicate edge or fail with a unique violation.
	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO follows (follower_id, followee_id, created_at)
		 VALUES (?, ?, NOW())
		 ON CONFLICT (follower_id, followee_id) DO NOTHING`,
		followerID, followeeID,
	)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	return nil
}

func (r *followRepository) Unfollow(ctx context.Context, followerID, followeeID uint) error {
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *followRepository) Exists(ctx context.Context, followerID, followeeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *followRepository) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("followee_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *followRepository) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
