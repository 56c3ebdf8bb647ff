package repository

import (
	"context"
	"errors"

	"linkora/internal/cache"
	"linkora/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error)
	List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uint) error
	IsLiked(ctx context.Context, userID, postID uint) (bool, error)
	GetLikedPostIDs(ctx context.Context, userID uint, postIDs []uint) ([]uint, error)
	Like(ctx context.Context, userID, postID uint) error
	Unlike(ctx context.Context, userID, postID uint) error
	CountLikes(ctx context.Context, postID uint) (int64, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	var post models.Post
	key := cache.PostKey(id)

	var err error
	if currentUserID == 0 {
		err = cache.Aside(ctx, key, &post, cache.PostTTL, func() error {
			return r.applyPostDetails(r.db.WithContext(ctx), 0).
				Preload("User").
				First(&post, id).Error
		})
	} else {
		err = r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
			Preload("User").
			First(&post, id).Error
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

// applyPostDetails adds subqueries to fetch counts and liked status in a single query.
func (r *postRepository) applyPostDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id AND comments.deleted_at IS NULL) as comments_count, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) as likes_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM likes WHERE likes.post_id = posts.id AND likes.user_id = ?) as liked", currentUserID)
	}

	return db.Select(selectQuery + ", false as liked")
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Post{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, id)
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *postRepository) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *postRepository) GetLikedPostIDs(ctx context.Context, userID uint, postIDs []uint) ([]uint, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var likedPostIDs []uint
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &likedPostIDs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return likedPostIDs, nil
}

func (r *postRepository) Like(ctx context.Context, userID, postID uint) error {
	// Use INSERT ... ON CONFLICT DO NOTHING to handle race conditions
	// This is atomic and prevents duplicate key errors
	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO likes (user_id, post_id, created_at)
		 VALUES (?, ?, NOW())
		 ON CONFLICT (user_id, post_id) DO NOTHING`,
		userID, postID,
	)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	cache.InvalidatePost(ctx, postID)
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *postRepository) Unlike(ctx context.Context, userID, postID uint) error {
	// Hard delete the like record (not soft delete)
	err := r.db.WithContext(ctx).Unscoped().Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Like{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, postID)
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *postRepository) CountLikes(ctx context.Context, postID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
