package server

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"testing"
	"time"

	"linkora/internal/config"
	"linkora/internal/models"
	"linkora/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) CountPostsByUser(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockPostRepository is a mock of the PostRepository interface
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	args := m.Called(ctx, id, currentUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	args := m.Called(ctx, limit, offset, currentUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) GetLikedPostIDs(ctx context.Context, userID uint, postIDs []uint) ([]uint, error) {
	args := m.Called(ctx, userID, postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockPostRepository) Like(ctx context.Context, userID, postID uint) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockPostRepository) Unlike(ctx context.Context, userID, postID uint) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockPostRepository) CountLikes(ctx context.Context, postID uint) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

// MockCommentRepository is a mock of the CommentRepository interface
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	args := m.Called(ctx, postID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) CountByPost(ctx context.Context, postID uint) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFollowRepository is a mock of the FollowRepository interface
type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) Follow(ctx context.Context, followerID, followeeID uint) error {
	args := m.Called(ctx, followerID, followeeID)
	return args.Error(0)
}

func (m *MockFollowRepository) Unfollow(ctx context.Context, followerID, followeeID uint) error {
	args := m.Called(ctx, followerID, followeeID)
	return args.Error(0)
}

func (m *MockFollowRepository) Exists(ctx context.Context, followerID, followeeID uint) (bool, error) {
	args := m.Called(ctx, followerID, followeeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFollowRepository) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockOTPRepository is a mock of the OTPRepository interface
type MockOTPRepository struct {
	mock.Mock
}

func (m *MockOTPRepository) Create(ctx context.Context, otp *models.OneTimePassword) error {
	args := m.Called(ctx, otp)
	return args.Error(0)
}

func (m *MockOTPRepository) GetByUserAndCode(ctx context.Context, userID uint, code string) (*models.OneTimePassword, error) {
	args := m.Called(ctx, userID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OneTimePassword), args.Error(1)
}

func (m *MockOTPRepository) DeleteAllForUser(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// fakeMailer records sent codes without touching the network.
type fakeMailer struct {
	mu    sync.Mutex
	sent  []string
	codes []string
}

func (f *fakeMailer) SendVerificationCode(to, code string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, to)
	f.codes = append(f.codes, code)
	return nil
}

// testDeps bundles the mocks behind a test server.
type testDeps struct {
	userRepo    *MockUserRepository
	postRepo    *MockPostRepository
	commentRepo *MockCommentRepository
	followRepo  *MockFollowRepository
	otpRepo     *MockOTPRepository
	mailer      *fakeMailer
}

const testSecret = "test-secret-key-12345678901234567890123456789012"

// newTestServer builds a Server over mocks and mounts all routes.
func newTestServer(t *testing.T) (*fiber.App, *Server, *testDeps) {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	deps := &testDeps{
		userRepo:    new(MockUserRepository),
		postRepo:    new(MockPostRepository),
		commentRepo: new(MockCommentRepository),
		followRepo:  new(MockFollowRepository),
		otpRepo:     new(MockOTPRepository),
		mailer:      &fakeMailer{},
	}

	s := &Server{
		config:      &config.Config{JWTSecret: testSecret, Env: "test"},
		mailer:      deps.mailer,
		userRepo:    deps.userRepo,
		postRepo:    deps.postRepo,
		commentRepo: deps.commentRepo,
		followRepo:  deps.followRepo,
		otpRepo:     deps.otpRepo,
	}
	s.postService = service.NewPostService(deps.postRepo, deps.userRepo)
	s.commentService = service.NewCommentService(deps.commentRepo, deps.postRepo)
	s.followService = service.NewFollowService(deps.followRepo, deps.userRepo)
	s.userService = service.NewUserService(deps.userRepo, deps.followRepo)

	app := fiber.New()
	s.SetupRoutes(app)

	return app, s, deps
}

// sessionCookie returns a valid session cookie for the given user.
func sessionCookie(t *testing.T, userID uint) *http.Cookie {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": "linkora-api",
		"aud": "linkora-client",
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
		"jti": "test-jti",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	str, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return &http.Cookie{Name: SessionCookieName, Value: str}
}

// expectAuthUser wires the user lookup the session guard performs.
func expectAuthUser(deps *testDeps, userID uint) {
	deps.userRepo.On("GetByID", mock.Anything, userID).
		Return(&models.User{ID: userID, Name: "Test User", IsActive: true}, nil)
}
