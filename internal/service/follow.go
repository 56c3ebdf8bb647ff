package service

import (
	"context"

	"linkora/internal/cache"
	"linkora/internal/models"
	"linkora/internal/repository"
)

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// FollowResult reports the state of the edge after a toggle.
type FollowResult struct {
	Following bool  `json:"following"`
	Followers int64 `json:"followers"`
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// ToggleFollow follows the target if no edge exists, otherwise unfollows.
func (s *FollowService) ToggleFollow(ctx context.Context, followerID, targetID uint) (*FollowResult, error) {
	if followerID == targetID {
		return nil, models.NewValidationError("You cannot follow yourself")
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	following, err := s.followRepo.Exists(ctx, followerID, targetID)
	if err != nil {
		return nil, err
	}

	if following {
		err = s.followRepo.Unfollow(ctx, followerID, targetID)
	} else {
		err = s.followRepo.Follow(ctx, followerID, targetID)
	}
	if err != nil {
		return nil, err
	}

	followers, err := s.followRepo.CountFollowers(ctx, target.ID)
	if err != nil {
		return nil, err
	}

	// Counts on both cached profiles are stale now.
	cache.InvalidateProfile(ctx, target.ID)
	cache.InvalidateProfile(ctx, followerID)

	return &FollowResult{
		Following: !following,
		Followers: followers,
	}, nil
}
