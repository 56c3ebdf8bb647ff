package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /users. It returns the caller's public profile
// with live follower/following/post counts.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.userService.GetPublicProfile(c.Context(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    profile,
	})
}
