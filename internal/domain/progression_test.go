package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wellnest-app/backend/internal/domain/badge"
	"github.com/wellnest-app/backend/internal/domain/challenge"
	"github.com/wellnest-app/backend/internal/domain/leaderboard"
	"github.com/wellnest-app/backend/internal/domain/streak"
	"github.com/wellnest-app/backend/internal/model"
	"github.com/wellnest-app/backend/internal/repository"
	"github.com/wellnest-app/backend/pkg/errorx"
	"github.com/wellnest-app/backend/pkg/testutil"
	"github.com/wellnest-app/backend/pkg/xcontext"
)

func requireErrorCode(t *testing.T, err error, code errorx.Code) {
	t.Helper()

	errx := errorx.Error{}
	require.True(t, errors.As(err, &errx))
	require.Equal(t, code, errx.Code)
}

type progressionFixture struct {
	progression      ProgressionDomain
	challengeManager *challenge.Manager
	badgeManager     *badge.Manager
}

func newProgressionFixture(t *testing.T) progressionFixture {
	registry, err := challenge.NewRegistry(challenge.Defaults()...)
	require.NoError(t, err)

	catalog := badge.NewCatalog().WithChallengeBadges(registry.ChallengeBadges())

	challengeManager := challenge.NewManager(registry, repository.NewUserChallengeRepository())
	badgeManager := badge.NewManager(catalog, repository.NewUserBadgeRepository())

	progression := NewProgressionDomain(
		repository.NewActivityEventRepository(),
		repository.NewUserLevelRepository(),
		repository.NewXPAwardRepository(),
		streak.NewTracker(repository.NewStreakStateRepository()),
		badgeManager,
		challengeManager,
		leaderboard.New(repository.NewXPAwardRepository(), testutil.NewMockRedisClient()),
	)

	return progressionFixture{
		progression:      progression,
		challengeManager: challengeManager,
		badgeManager:     badgeManager,
	}
}

func Test_progressionDomain_LogActivity_WeekStreakScenario(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")
	fixture := newProgressionFixture(t)

	_, err := fixture.challengeManager.Join(ctx, "user1", "workout-week-streak")
	require.NoError(t, err)

	day := time.Date(2024, 5, 6, 7, 0, 0, 0, time.UTC)

	var resp *model.LogActivityResponse
	for i := 0; i < 7; i++ {
		resp, err = fixture.progression.LogActivity(ctx, &model.LogActivityRequest{
			Domain:       "workout",
			XPAmount:     40,
			ActivityDate: day.AddDate(0, 0, i),
			TotalCount:   i + 1,
		})
		require.NoError(t, err)

		if i < 6 {
			require.Empty(t, resp.NewBadges)
			require.Empty(t, resp.CompletedChallenges)
			require.Equal(t, int64(40), resp.XPAwarded)
		}
	}

	// The seventh day completes the challenge and crosses the seven-day
	// streak milestone; the challenge reward XP lands in the same response.
	require.Equal(t, []string{"challenge-workout-week-streak", "workout-streak-7"}, resp.NewBadges)
	require.Equal(t, []string{"workout-week-streak"}, resp.CompletedChallenges)
	require.Equal(t, int64(540), resp.XPAwarded)
	require.Equal(t, 3, resp.Level)
	require.True(t, resp.LevelUp)
	require.False(t, resp.TierChange)

	// Replaying the last day is a no-op for the streak, the badges, and the
	// settled challenge; only the event's own XP lands again.
	resp, err = fixture.progression.LogActivity(ctx, &model.LogActivityRequest{
		Domain:       "workout",
		XPAmount:     40,
		ActivityDate: day.AddDate(0, 0, 6),
		TotalCount:   8,
	})
	require.NoError(t, err)
	require.Empty(t, resp.NewBadges)
	require.Empty(t, resp.CompletedChallenges)
	require.Equal(t, int64(40), resp.XPAwarded)

	badges, err := fixture.badgeManager.GetUserBadges(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, badges, 2)

	level, err := fixture.progression.GetUserLevel(ctx, &model.GetUserLevelRequest{})
	require.NoError(t, err)
	require.Equal(t, int64(820), level.TotalXP)
	require.Equal(t, 3, level.Level)
	require.Equal(t, "bronze", level.Tier)
	require.Equal(t, int64(420), level.CurrentXP)
}

func Test_progressionDomain_LogActivity_EventReplay(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")
	fixture := newProgressionFixture(t)

	req := &model.LogActivityRequest{
		EventID:      "evt-1",
		Domain:       "workout",
		XPAmount:     40,
		ActivityDate: time.Date(2024, 5, 6, 7, 0, 0, 0, time.UTC),
		TotalCount:   1,
	}

	resp, err := fixture.progression.LogActivity(ctx, req)
	require.NoError(t, err)
	require.False(t, resp.Duplicate)
	require.Equal(t, int64(40), resp.XPAwarded)

	// Redelivering the same event id awards nothing, only reports the
	// user's current standing.
	resp, err = fixture.progression.LogActivity(ctx, req)
	require.NoError(t, err)
	require.True(t, resp.Duplicate)
	require.Equal(t, int64(0), resp.XPAwarded)
	require.Empty(t, resp.NewBadges)
	require.Empty(t, resp.CompletedChallenges)
	require.Equal(t, 1, resp.Level)

	level, err := fixture.progression.GetUserLevel(ctx, &model.GetUserLevelRequest{})
	require.NoError(t, err)
	require.Equal(t, int64(40), level.TotalXP)

	// A fresh id on the same day is a distinct event and lands again.
	resp, err = fixture.progression.LogActivity(ctx, &model.LogActivityRequest{
		EventID:      "evt-2",
		Domain:       "workout",
		XPAmount:     40,
		ActivityDate: time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC),
		TotalCount:   2,
	})
	require.NoError(t, err)
	require.False(t, resp.Duplicate)
	require.Equal(t, int64(40), resp.XPAwarded)
}

func Test_progressionDomain_LogActivity_FirstAnalysisBadge(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")
	fixture := newProgressionFixture(t)

	resp, err := fixture.progression.LogActivity(ctx, &model.LogActivityRequest{
		Domain:       "analysis",
		XPAmount:     25,
		ActivityDate: time.Date(2024, 5, 6, 12, 0, 0, 0, time.UTC),
		TotalCount:   1,
	})
	require.NoError(t, err)
	require.Equal(t, []string{"first-analysis"}, resp.NewBadges)

	resp, err = fixture.progression.LogActivity(ctx, &model.LogActivityRequest{
		Domain:       "analysis",
		XPAmount:     25,
		ActivityDate: time.Date(2024, 5, 7, 12, 0, 0, 0, time.UTC),
		TotalCount:   2,
	})
	require.NoError(t, err)
	require.Empty(t, resp.NewBadges)
}

func Test_progressionDomain_LogActivity_LevelBadge(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")
	fixture := newProgressionFixture(t)

	// Enough XP to move straight from level 1 to level 10.
	resp, err := fixture.progression.LogActivity(ctx, &model.LogActivityRequest{
		Domain:       "workout",
		XPAmount:     17000,
		ActivityDate: time.Date(2024, 5, 6, 7, 0, 0, 0, time.UTC),
		TotalCount:   1,
	})
	require.NoError(t, err)
	require.Equal(t, 10, resp.Level)
	require.True(t, resp.LevelUp)
	require.True(t, resp.TierChange)
	require.Equal(t, "silver", resp.Tier)
	require.Contains(t, resp.NewBadges, "level-10")
}

func Test_progressionDomain_LogActivity_Validation(t *testing.T) {
	ctx := testutil.MockContext()
	fixture := newProgressionFixture(t)

	req := &model.LogActivityRequest{
		Domain:       "workout",
		XPAmount:     10,
		ActivityDate: time.Now(),
	}

	_, err := fixture.progression.LogActivity(ctx, req)
	requireErrorCode(t, err, errorx.Unauthenticated)

	ctx = xcontext.WithRequestUserID(ctx, "user1")

	_, err = fixture.progression.LogActivity(ctx, &model.LogActivityRequest{
		Domain:       "gardening",
		XPAmount:     10,
		ActivityDate: time.Now(),
	})
	requireErrorCode(t, err, errorx.BadRequest)

	_, err = fixture.progression.LogActivity(ctx, &model.LogActivityRequest{
		Domain:       "workout",
		XPAmount:     -10,
		ActivityDate: time.Now(),
	})
	requireErrorCode(t, err, errorx.BadRequest)

	_, err = fixture.progression.LogActivity(ctx, &model.LogActivityRequest{
		Domain:   "workout",
		XPAmount: 10,
	})
	requireErrorCode(t, err, errorx.BadRequest)
}

func Test_progressionDomain_GetUserLevel_FreshUser(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user2")
	fixture := newProgressionFixture(t)

	level, err := fixture.progression.GetUserLevel(ctx, &model.GetUserLevelRequest{})
	require.NoError(t, err)
	require.Equal(t, 1, level.Level)
	require.Equal(t, "bronze", level.Tier)
	require.Equal(t, int64(0), level.TotalXP)
	require.Equal(t, int64(100), level.XPToNextLevel)
}
