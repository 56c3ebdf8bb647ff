// Package service implements the application's business logic.
package service

import (
	"context"

	"linkora/internal/cache"
	"linkora/internal/models"
	"linkora/internal/repository"
)

// FeedPageSize is the fixed number of posts per feed page.
const FeedPageSize = 10

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

type CreatePostInput struct {
	UserID  uint
	Content string
	Images  []string
}

type ListFeedInput struct {
	Page          int
	CurrentUserID uint
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

// FeedPage is one page of the reverse-chronological feed.
type FeedPage struct {
	Posts      []*models.Post `json:"posts"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
	TotalPosts int64          `json:"totalPosts"`
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > models.MaxPostContentLen {
		return nil, models.NewValidationError("Content too long (max 2000 characters)")
	}

	post := &models.Post{
		UserID:  in.UserID,
		Content: in.Content,
		Images:  in.Images,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

func (s *PostService) ListFeed(ctx context.Context, in ListFeedInput) (*FeedPage, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * FeedPageSize

	total, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	var posts []*models.Post
	if page == 1 {
		// The first page is the hot path; cache it without per-viewer state
		// and re-apply liked flags for the current viewer below.
		err = cache.Aside(ctx, cache.FeedKey(page), &posts, cache.FeedTTL, func() error {
			var fetchErr error
			posts, fetchErr = s.postRepo.List(ctx, FeedPageSize, offset, 0)
			return fetchErr
		})
	} else {
		posts, err = s.postRepo.List(ctx, FeedPageSize, offset, 0)
	}
	if err != nil {
		return nil, err
	}

	if in.CurrentUserID != 0 && len(posts) > 0 {
		ids := make([]uint, 0, len(posts))
		for _, p := range posts {
			ids = append(ids, p.ID)
		}
		likedIDs, err := s.postRepo.GetLikedPostIDs(ctx, in.CurrentUserID, ids)
		if err != nil {
			return nil, err
		}
		liked := make(map[uint]bool, len(likedIDs))
		for _, id := range likedIDs {
			liked[id] = true
		}
		for _, p := range posts {
			p.Liked = liked[p.ID]
		}
	}

	totalPages := int((total + FeedPageSize - 1) / FeedPageSize)

	return &FeedPage{
		Posts:      posts,
		Page:       page,
		TotalPages: totalPages,
		TotalPosts: total,
	}, nil
}

// ToggleLike flips the current user's like on a post. It returns whether the
// post is liked after the call and the resulting like count.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID uint) (bool, int64, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return false, 0, err
	}

	liked, err := s.postRepo.IsLiked(ctx, userID, postID)
	if err != nil {
		return false, 0, err
	}

	if liked {
		err = s.postRepo.Unlike(ctx, userID, postID)
	} else {
		err = s.postRepo.Like(ctx, userID, postID)
	}
	if err != nil {
		return false, 0, err
	}

	total, err := s.postRepo.CountLikes(ctx, postID)
	if err != nil {
		return false, 0, err
	}
	return !liked, total, nil
}

func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID, 0)
	if err != nil {
		return err
	}
	if post.UserID != in.UserID {
		return models.NewForbiddenError("You can only delete your own posts")
	}
	return s.postRepo.Delete(ctx, in.PostID)
}
