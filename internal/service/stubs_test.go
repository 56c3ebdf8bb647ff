package service

import (
	"context"
	"testing"

	"linkora/internal/models"

	"github.com/stretchr/testify/require"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn          func(context.Context, *models.Post) error
	getByIDFn         func(context.Context, uint, uint) (*models.Post, error)
	listFn            func(context.Context, int, int, uint) ([]*models.Post, error)
	countFn           func(context.Context) (int64, error)
	deleteFn          func(context.Context, uint) error
	isLikedFn         func(context.Context, uint, uint) (bool, error)
	getLikedPostIDsFn func(context.Context, uint, []uint) ([]uint, error)
	likeFn            func(context.Context, uint, uint) error
	unlikeFn          func(context.Context, uint, uint) error
	countLikesFn      func(context.Context, uint) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.listFn(ctx, limit, offset, currentUserID)
}
func (s *postRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, postID)
}
func (s *postRepoStub) GetLikedPostIDs(ctx context.Context, userID uint, postIDs []uint) ([]uint, error) {
	return s.getLikedPostIDsFn(ctx, userID, postIDs)
}
func (s *postRepoStub) Like(ctx context.Context, userID, postID uint) error {
	return s.likeFn(ctx, userID, postID)
}
func (s *postRepoStub) Unlike(ctx context.Context, userID, postID uint) error {
	return s.unlikeFn(ctx, userID, postID)
}
func (s *postRepoStub) CountLikes(ctx context.Context, postID uint) (int64, error) {
	return s.countLikesFn(ctx, postID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:          func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:         func(_ context.Context, _, _ uint) (*models.Post, error) { return &models.Post{}, nil },
		listFn:            func(_ context.Context, _, _ int, _ uint) ([]*models.Post, error) { return nil, nil },
		countFn:           func(_ context.Context) (int64, error) { return 0, nil },
		deleteFn:          func(_ context.Context, _ uint) error { return nil },
		isLikedFn:         func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		getLikedPostIDsFn: func(_ context.Context, _ uint, _ []uint) ([]uint, error) { return nil, nil },
		likeFn:            func(_ context.Context, _, _ uint) error { return nil },
		unlikeFn:          func(_ context.Context, _, _ uint) error { return nil },
		countLikesFn:      func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn          func(context.Context, uint) (*models.User, error)
	getByEmailFn       func(context.Context, string) (*models.User, error)
	getByUsernameFn    func(context.Context, string) (*models.User, error)
	createFn           func(context.Context, *models.User) error
	updateFn           func(context.Context, *models.User) error
	countPostsByUserFn func(context.Context, uint) (int64, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) CountPostsByUser(ctx context.Context, userID uint) (int64, error) {
	return s.countPostsByUserFn(ctx, userID)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:          func(_ context.Context, _ uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:       func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:           func(_ context.Context, _ *models.User) error { return nil },
		updateFn:           func(_ context.Context, _ *models.User) error { return nil },
		countPostsByUserFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn      func(context.Context, *models.Comment) error
	getByIDFn     func(context.Context, uint) (*models.Comment, error)
	listByPostFn  func(context.Context, uint, int, int) ([]*models.Comment, error)
	countByPostFn func(context.Context, uint) (int64, error)
	deleteFn      func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID, limit, offset)
}
func (s *commentRepoStub) CountByPost(ctx context.Context, postID uint) (int64, error) {
	return s.countByPostFn(ctx, postID)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:      func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:     func(_ context.Context, _ uint) (*models.Comment, error) { return &models.Comment{}, nil },
		listByPostFn:  func(_ context.Context, _ uint, _, _ int) ([]*models.Comment, error) { return nil, nil },
		countByPostFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		deleteFn:      func(_ context.Context, _ uint) error { return nil },
	}
}

// followRepoStub is a stub for repository.FollowRepository.
type followRepoStub struct {
	followFn         func(context.Context, uint, uint) error
	unfollowFn       func(context.Context, uint, uint) error
	existsFn         func(context.Context, uint, uint) (bool, error)
	countFollowersFn func(context.Context, uint) (int64, error)
	countFollowingFn func(context.Context, uint) (int64, error)
}

func (s *followRepoStub) Follow(ctx context.Context, followerID, followeeID uint) error {
	return s.followFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Unfollow(ctx context.Context, followerID, followeeID uint) error {
	return s.unfollowFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Exists(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.existsFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowersFn(ctx, userID)
}
func (s *followRepoStub) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowingFn(ctx, userID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		followFn:         func(_ context.Context, _, _ uint) error { return nil },
		unfollowFn:       func(_ context.Context, _, _ uint) error { return nil },
		existsFn:         func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		countFollowersFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		countFollowingFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, models.CodeValidationError, appErr.Code)
}

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, code, appErr.Code)
}
