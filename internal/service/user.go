package service

import (
	"context"

	"linkora/internal/cache"
	"linkora/internal/models"
	"linkora/internal/repository"
)

type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository) *UserService {
	return &UserService{
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

// GetPublicProfile returns the sanitized view of a user plus their graph counts.
func (s *UserService) GetPublicProfile(ctx context.Context, userID uint) (*models.PublicProfile, error) {
	var profile models.PublicProfile

	err := cache.Aside(ctx, cache.ProfileKey(userID), &profile, cache.ProfileTTL, func() error {
		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return err
		}

		followers, err := s.followRepo.CountFollowers(ctx, user.ID)
		if err != nil {
			return err
		}
		following, err := s.followRepo.CountFollowing(ctx, user.ID)
		if err != nil {
			return err
		}
		posts, err := s.userRepo.CountPostsByUser(ctx, user.ID)
		if err != nil {
			return err
		}

		username := ""
		if user.Username != nil {
			username = *user.Username
		}
		profile = models.PublicProfile{
			ID:         user.ID,
			Name:       user.Name,
			Username:   username,
			Avatar:     user.Avatar,
			Bio:        user.Bio,
			Followers:  followers,
			Following:  following,
			PostCount:  posts,
			IsVerified: user.IsVerified,
			CreatedAt:  user.CreatedAt,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &profile, nil
}
