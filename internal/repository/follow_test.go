package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepository_Follow(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	t.Run("Insert succeeds", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO follows .*ON CONFLICT \(follower_id, followee_id\) DO NOTHING`).
			WithArgs(uint(1), uint(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Follow(ctx, 1, 2)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate edge is a no-op", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO follows .*DO NOTHING`).
			WithArgs(uint(1), uint(2)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Follow(ctx, 1, 2)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO follows`).
			WithArgs(uint(1), uint(2)).
			WillReturnError(errors.New("connection reset"))

		err := repo.Follow(ctx, 1, 2)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFollowRepository_Unfollow(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "follows" WHERE follower_id = \$1 AND followee_id = \$2`).
		WithArgs(uint(1), uint(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Unfollow(ctx, 1, 2)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowRepository_Exists(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	t.Run("Edge present", func(t *testing.T) {
		mock.ExpectQuery(`SELECT count\(\*\) FROM "follows"`).
			WithArgs(uint(1), uint(2)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.Exists(ctx, 1, 2)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Edge absent", func(t *testing.T) {
		mock.ExpectQuery(`SELECT count\(\*\) FROM "follows"`).
			WithArgs(uint(1), uint(3)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.Exists(ctx, 1, 3)
		require.NoError(t, err)
		assert.False(t, exists)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowRepository_Counts(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "follows" WHERE followee_id = \$1`).
		WithArgs(uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	followers, err := repo.CountFollowers(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(4), followers)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "follows" WHERE follower_id = \$1`).
		WithArgs(uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(9))

	following, err := repo.CountFollowing(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(9), following)
	assert.NoError(t, mock.ExpectationsWereMet())
}
