package service

import (
	"context"

	"linkora/internal/models"
	"linkora/internal/repository"
)

// CommentPageSize is the fixed number of comments per page.
const CommentPageSize = 5

const maxCommentLen = 2000

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type AddCommentInput struct {
	UserID uint
	PostID uint
	Text   string
}

type DeleteCommentInput struct {
	UserID    uint
	CommentID uint
}

// CommentPage is one page of a post's comments.
type CommentPage struct {
	Comments      []*models.Comment `json:"comments"`
	Page          int               `json:"page"`
	TotalComments int64             `json:"totalComments"`
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (s *CommentService) AddComment(ctx context.Context, in AddCommentInput) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, in.PostID, 0); err != nil {
		return nil, err
	}

	if in.Text == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(in.Text) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 2000 characters)")
	}

	comment := &models.Comment{
		Text:   in.Text,
		UserID: in.UserID,
		PostID: in.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	// Re-fetch so the author association is populated.
	return s.commentRepo.GetByID(ctx, comment.ID)
}

func (s *CommentService) ListComments(ctx context.Context, postID uint, page int) (*CommentPage, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * CommentPageSize

	total, err := s.commentRepo.CountByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID, CommentPageSize, offset)
	if err != nil {
		return nil, err
	}

	return &CommentPage{
		Comments:      comments,
		Page:          page,
		TotalComments: total,
	}, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) error {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return err
	}

	if comment.UserID != in.UserID {
		return models.NewForbiddenError("You can only delete your own comments")
	}

	return s.commentRepo.Delete(ctx, in.CommentID)
}
