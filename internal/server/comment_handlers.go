package server

import (
	"linkora/internal/models"
	"linkora/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /comment/:postId
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := paramUint(c, "postId")
	if err != nil {
		return respondError(c, err)
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.AddComment(c.Context(), service.AddCommentInput{
		UserID: currentUserID(c),
		PostID: postID,
		Text:   req.Text,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Comment added",
		"comment": comment,
	})
}

// GetComments handles GET /comment/:postId?page=N
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := paramUint(c, "postId")
	if err != nil {
		return respondError(c, err)
	}

	page, err := s.commentService.ListComments(c.Context(), postID, queryPage(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"page":          page.Page,
		"totalComments": page.TotalComments,
		"comments":      page.Comments,
	})
}

// DeleteComment handles DELETE /comment/:commentId
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	commentID, err := paramUint(c, "commentId")
	if err != nil {
		return respondError(c, err)
	}

	if err := s.commentService.DeleteComment(c.Context(), service.DeleteCommentInput{
		UserID:    currentUserID(c),
		CommentID: commentID,
	}); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Comment deleted",
	})
}
