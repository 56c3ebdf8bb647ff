package server

import (
	"github.com/gofiber/fiber/v2"
)

// ToggleFollow handles POST /follow/:userId
func (s *Server) ToggleFollow(c *fiber.Ctx) error {
	targetID, err := paramUint(c, "userId")
	if err != nil {
		return respondError(c, err)
	}

	result, err := s.followService.ToggleFollow(c.Context(), currentUserID(c), targetID)
	if err != nil {
		return respondError(c, err)
	}

	message := "Unfollowed"
	if result.Following {
		message = "Followed"
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"message":   message,
		"following": result.Following,
		"followers": result.Followers,
	})
}
