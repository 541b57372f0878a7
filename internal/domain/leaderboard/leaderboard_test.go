package leaderboard

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/wellnest-app/backend/internal/entity"
	"github.com/wellnest-app/backend/internal/repository"
	"github.com/wellnest-app/backend/pkg/testutil"
)

func Test_leaderboard_GetLeaderBoard(t *testing.T) {
	ctx := testutil.MockContext()
	xpAwardRepo := repository.NewXPAwardRepository()
	lb := New(xpAwardRepo, testutil.NewMockRedisClient())

	award := func(userID string, amount int64) {
		err := xpAwardRepo.Create(ctx, &entity.XPAward{
			Base:   entity.Base{ID: uuid.NewString()},
			UserID: userID,
			Domain: entity.DomainWorkout,
			Amount: amount,
		})
		require.NoError(t, err)
	}

	award("user1", 100)
	award("user1", 50)
	award("user2", 200)

	now := time.Now()

	// First read rebuilds the redis set from the award history.
	board, err := lb.GetLeaderBoard(ctx, "total", now, 0, 10)
	require.NoError(t, err)
	require.Len(t, board, 2)
	require.Equal(t, "user2", board[0].UserID)
	require.Equal(t, 200, board[0].Value)
	require.Equal(t, 1, board[0].CurrentRank)
	require.Equal(t, "user1", board[1].UserID)
	require.Equal(t, 150, board[1].Value)
	require.Equal(t, 2, board[1].CurrentRank)

	// A bump against the materialized set reorders without a rebuild.
	require.NoError(t, lb.ChangeXPLeaderboard(ctx, 100, now, "user1"))

	board, err = lb.GetLeaderBoard(ctx, "total", now, 0, 10)
	require.NoError(t, err)
	require.Equal(t, "user1", board[0].UserID)
	require.Equal(t, 250, board[0].Value)

	rank, err := lb.GetRank(ctx, "user2", "total", now)
	require.NoError(t, err)
	require.Equal(t, uint64(2), rank)

	_, err = lb.GetLeaderBoard(ctx, "decade", now, 0, 10)
	require.Error(t, err)
}

func Test_ToPeriod(t *testing.T) {
	at := time.Date(2024, 3, 14, 15, 0, 0, 0, time.UTC) // a Thursday

	week, err := ToPeriod("week", at)
	require.NoError(t, err)
	require.Equal(t, "week/11/2024", week.Key())
	require.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), week.Start())
	require.Equal(t, time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC), week.End())

	month, err := ToPeriod("month", at)
	require.NoError(t, err)
	require.Equal(t, "month/3/2024", month.Key())
	require.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), month.Start())
	require.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), month.End())

	total, err := ToPeriod("total", at)
	require.NoError(t, err)
	require.Equal(t, "total", total.Key())
	require.True(t, total.Start().IsZero())

	_, err = ToPeriod("decade", at)
	require.Error(t, err)
}
