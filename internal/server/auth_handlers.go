package server

import (
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
	"strings"
	"time"

	"linkora/internal/middleware"
	"linkora/internal/models"
	"linkora/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// otpTTL is how long a verification code stays valid.
const otpTTL = 10 * time.Minute

// Register handles POST /auth/register
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Name     string `json:"name"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))

	if req.Name == "" || req.Username == "" || req.Email == "" || req.Password == "" {
		return respondError(c, models.NewValidationError("Name, username, email, and password are required"))
	}
	if err := validation.ValidateName(req.Name); err != nil {
		return respondError(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateUsername(req.Username); err != nil {
		return respondError(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return respondError(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return respondError(c, models.NewValidationError(err.Error()))
	}

	// Duplicate email or username is a conflict
	if existing, err := s.userRepo.GetByEmail(c.Context(), req.Email); err != nil {
		return respondError(c, err)
	} else if existing != nil {
		return respondError(c, models.NewConflictError("Email already registered"))
	}
	if existing, err := s.userRepo.GetByUsername(c.Context(), req.Username); err != nil {
		return respondError(c, err)
	} else if existing != nil {
		return respondError(c, models.NewConflictError("Username already taken"))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return respondError(c, models.NewInternalError(err))
	}

	user := &models.User{
		Name:         req.Name,
		Username:     &req.Username,
		Email:        &req.Email,
		Password:     string(hashedPassword),
		AuthProvider: models.AuthProviderLocal,
		IsActive:     true,
	}
	if err := s.userRepo.Create(c.Context(), user); err != nil {
		return respondError(c, err)
	}

	code, err := generateOTP()
	if err != nil {
		return respondError(c, models.NewInternalError(err))
	}
	otp := &models.OneTimePassword{
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: time.Now().Add(otpTTL),
	}
	if err := s.otpRepo.Create(c.Context(), otp); err != nil {
		return respondError(c, err)
	}
	middleware.OTPIssued.Inc()

	// Fire-and-forget: the response never waits on email delivery and a
	// send failure is only logged.
	if s.mailer != nil {
		email := req.Email
		go func() {
			if sendErr := s.mailer.SendVerificationCode(email, code, otpTTL); sendErr != nil {
				middleware.EmailSendFailures.Inc()
				middleware.Logger.Error("verification email failed",
					slog.String("error", sendErr.Error()),
				)
			}
		}()
	}

	// Session starts immediately; verification only flips the flag later.
	token, err := s.generateToken(user.ID)
	if err != nil {
		return respondError(c, models.NewInternalError(err))
	}
	s.setSessionCookie(c, token)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Registration successful, verification code sent",
		"user":    user,
	})
}

// Login handles POST /auth/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return respondError(c, err)
	}
	if user == nil {
		return respondError(c, models.NewInvalidCredentialsError())
	}
	if user.AuthProvider != models.AuthProviderLocal {
		return respondError(c, models.NewWrongProviderError("Use Google login"))
	}
	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); cmpErr != nil {
		return respondError(c, models.NewInvalidCredentialsError())
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(c.Context(), user); err != nil {
		return respondError(c, err)
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return respondError(c, models.NewInternalError(err))
	}
	s.setSessionCookie(c, token)

	username := ""
	if user.Username != nil {
		username = *user.Username
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"user": fiber.Map{
			"username": username,
		},
	})
}

// VerifyOTP handles POST /auth/verify-otp
func (s *Server) VerifyOTP(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return respondError(c, err)
	}
	if user == nil {
		return respondError(c, models.NewNotFoundError("User", req.Email))
	}

	otp, err := s.otpRepo.GetByUserAndCode(c.Context(), user.ID, req.OTP)
	if err != nil {
		return respondError(c, err)
	}
	if otp == nil || otp.Expired(time.Now()) {
		return respondError(c, models.NewValidationError("Invalid or expired OTP"))
	}

	user.IsVerified = true
	if err := s.userRepo.Update(c.Context(), user); err != nil {
		return respondError(c, err)
	}

	// Codes are single-use; clear every outstanding one for the account.
	if err := s.otpRepo.DeleteAllForUser(c.Context(), user.ID); err != nil {
		return respondError(c, err)
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return respondError(c, models.NewInternalError(err))
	}
	s.setSessionCookie(c, token)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Email verified",
	})
}

// Logout handles POST /auth/logout. It always succeeds.
func (s *Server) Logout(c *fiber.Ctx) error {
	s.clearSessionCookie(c)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged out",
	})
}

// Me handles GET /auth/me
func (s *Server) Me(c *fiber.Ctx) error {
	user, ok := c.Locals("currentUser").(*models.User)
	if !ok {
		return respondError(c, models.NewUnauthorizedError("Authentication required"))
	}
	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// generateToken creates a session JWT for the given user ID
func (s *Server) generateToken(userID uint) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10), // Subject (user ID as string)
		"iss": "linkora-api",                          // Issuer
		"aud": "linkora-client",                       // Audience
		"exp": now.Add(sessionTTL).Unix(),             // Expiration (7 days)
		"iat": now.Unix(),                             // Issued at
		"nbf": now.Unix(),                             // Not before
		"jti": generateJTI(),                          // JWT ID (unique identifier)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// generateJTI creates a unique JWT ID to prevent replay attacks
func generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}

// generateOTP produces a 6-digit numeric verification code.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
