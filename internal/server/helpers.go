package server

import (
	"errors"
	"strconv"
	"time"

	"linkora/internal/models"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps an application error to its HTTP status code.
func statusForError(err error) int {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case models.CodeNotFound:
		return fiber.StatusNotFound
	case models.CodeValidationError, models.CodeWrongProvider:
		return fiber.StatusBadRequest
	case models.CodeConflict:
		return fiber.StatusConflict
	case models.CodeUnauthorized, models.CodeInvalidCredentials:
		return fiber.StatusUnauthorized
	case models.CodeForbidden:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes an application error with its mapped status.
func respondError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, statusForError(err), err)
}

// currentUserID returns the authenticated user's ID set by AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	if uid, ok := c.Locals("userID").(uint); ok {
		return uid
	}
	return 0
}

// paramUint parses a positive integer route parameter.
func paramUint(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		return 0, models.NewValidationError("Invalid " + name)
	}
	return uint(v), nil
}

// queryPage parses the page query parameter, defaulting to 1.
func queryPage(c *fiber.Ctx) int {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// setSessionCookie issues the session cookie. SameSite=None with Secure is
// required for the separately-hosted frontend.
func (s *Server) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Domain:   s.config.CookieDomain,
		Expires:  time.Now().Add(sessionTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
}

// clearSessionCookie expires the session cookie.
func (s *Server) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   s.config.CookieDomain,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
}
