package seed

import (
	"fmt"
	"log"

	"linkora/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seeder populates the database with demo data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll removes all seeded rows. Dependent tables go first so foreign
// keys never block the wipe.
func (s *Seeder) ClearAll() error {
	tables := []string{"one_time_passwords", "likes", "comments", "follows", "posts", "users"}
	for _, table := range tables {
		if err := s.db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}

// Seed populates the database with test data
func (s *Seeder) Seed(opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	users, err := s.createUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d test users created", len(users))

	posts, err := s.createPosts(users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ %d posts created", len(posts))

	if err := s.createFollowMesh(users); err != nil {
		return fmt.Errorf("failed to create follow graph: %w", err)
	}
	log.Println("✓ follow graph created")

	if err := s.createEngagement(users, posts); err != nil {
		return fmt.Errorf("failed to create engagement: %w", err)
	}
	log.Println("✓ likes and comments created")

	return nil
}

func (s *Seeder) createUsers(count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)
	for i := 0; i < count; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Seeder) createPosts(users []*models.User, count int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, nil
	}
	posts := make([]*models.Post, 0, count)
	for i := 0; i < count; i++ {
		author := users[gofakeit.Number(0, len(users)-1)]
		post, err := s.factory.CreatePost(author, 90)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// createFollowMesh gives every user a handful of random follows.
func (s *Seeder) createFollowMesh(users []*models.User) error {
	for _, follower := range users {
		n := gofakeit.Number(2, 8)
		for i := 0; i < n; i++ {
			followee := users[gofakeit.Number(0, len(users)-1)]
			if err := s.factory.CreateFollow(follower, followee); err != nil {
				return err
			}
		}
	}
	return nil
}

// createEngagement scatters likes and comments across the posts.
func (s *Seeder) createEngagement(users []*models.User, posts []*models.Post) error {
	for _, post := range posts {
		likes := gofakeit.Number(0, len(users)/2)
		for i := 0; i < likes; i++ {
			liker := users[gofakeit.Number(0, len(users)-1)]
			if err := s.factory.CreateLike(liker, post); err != nil {
				return err
			}
		}

		comments := gofakeit.Number(0, 6)
		for i := 0; i < comments; i++ {
			commenter := users[gofakeit.Number(0, len(users)-1)]
			if _, err := s.factory.CreateComment(commenter, post); err != nil {
				return err
			}
		}
	}
	return nil
}
