package server

import (
	"linkora/internal/models"
	"linkora/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /post/create
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Content string   `json:"content"`
		Images  []string `json:"images"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID:  currentUserID(c),
		Content: req.Content,
		Images:  req.Images,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Post created",
		"post":    post,
	})
}

// GetFeed handles GET /post/feed?page=N
func (s *Server) GetFeed(c *fiber.Ctx) error {
	feed, err := s.postService.ListFeed(c.Context(), service.ListFeedInput{
		Page:          queryPage(c),
		CurrentUserID: currentUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"page":       feed.Page,
		"totalPages": feed.TotalPages,
		"totalPosts": feed.TotalPosts,
		"posts":      feed.Posts,
	})
}

// ToggleLike handles POST /post/like/:postId
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	postID, err := paramUint(c, "postId")
	if err != nil {
		return respondError(c, err)
	}

	liked, total, err := s.postService.ToggleLike(c.Context(), currentUserID(c), postID)
	if err != nil {
		return respondError(c, err)
	}

	message := "Post unliked"
	if liked {
		message = "Post liked"
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"message":    message,
		"liked":      liked,
		"totalLikes": total,
	})
}

// DeletePost handles DELETE /post/:postId
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := paramUint(c, "postId")
	if err != nil {
		return respondError(c, err)
	}

	if err := s.postService.DeletePost(c.Context(), service.DeletePostInput{
		UserID: currentUserID(c),
		PostID: postID,
	}); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Post deleted",
	})
}
