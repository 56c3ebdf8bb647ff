// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"time"

	"linkora/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db *gorm.DB
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	username := fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999))
	email := gofakeit.Email()

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		Name:         gofakeit.Name(),
		Username:     &username,
		Email:        &email,
		Password:     string(hashedPassword),
		Bio:          gofakeit.Sentence(10),
		Avatar:       fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		AuthProvider: models.AuthProviderLocal,
		IsActive:     true,
		IsVerified:   true,
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost constructs and persists a sample `models.Post` for the given user,
// with a realistic created_at spread over the last maxDays days.
func (f *Factory) CreatePost(user *models.User, maxDays int, overrides ...func(*models.Post)) (*models.Post, error) {
	if maxDays <= 0 {
		maxDays = 90
	}
	post := &models.Post{
		UserID:  user.ID,
		Content: gofakeit.Paragraph(1, 3, 5, "\n"),
	}
	post.CreatedAt = time.Now().
		Add(-time.Duration(gofakeit.Number(0, maxDays)) * 24 * time.Hour).
		Add(-time.Duration(gofakeit.Number(0, 23)) * time.Hour)

	// roughly a third of posts carry an image
	if gofakeit.Number(0, 2) == 0 {
		post.Images = []string{fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())}
	}

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment constructs and persists a sample `models.Comment` on the
// provided post authored by the provided user.
func (f *Factory) CreateComment(user *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Text:   gofakeit.Sentence(8),
		UserID: user.ID,
		PostID: post.ID,
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like from `user` on `post`. Duplicate likes are
// silently ignored so random engagement seeding never trips the unique index.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	return f.db.Exec(
		"INSERT INTO likes (user_id, post_id, created_at) VALUES (?, ?, NOW()) ON CONFLICT (user_id, post_id) DO NOTHING",
		user.ID, post.ID,
	).Error
}

// CreateFollow persists a follow edge from `follower` to `followee`.
// Duplicate edges are silently ignored.
func (f *Factory) CreateFollow(follower, followee *models.User) error {
	if follower.ID == followee.ID {
		return nil
	}
	return f.db.Exec(
		"INSERT INTO follows (follower_id, followee_id, created_at) VALUES (?, ?, NOW()) ON CONFLICT (follower_id, followee_id) DO NOTHING",
		follower.ID, followee.ID,
	).Error
}
