package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wellnest-app/backend/internal/domain/challenge"
	"github.com/wellnest-app/backend/internal/model"
	"github.com/wellnest-app/backend/internal/repository"
	"github.com/wellnest-app/backend/pkg/errorx"
	"github.com/wellnest-app/backend/pkg/testutil"
)

func newChallengeDomain(t *testing.T) ChallengeDomain {
	registry, err := challenge.NewRegistry(challenge.Defaults()...)
	require.NoError(t, err)

	repo := repository.NewUserChallengeRepository()
	return NewChallengeDomain(challenge.NewManager(registry, repo), repo)
}

func Test_challengeDomain_JoinAndGetMyChallenges(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")
	challengeDomain := newChallengeDomain(t)

	joinResp, err := challengeDomain.Join(ctx, &model.JoinChallengeRequest{
		ChallengeCode: "workout-week-streak",
	})
	require.NoError(t, err)
	require.NotEmpty(t, joinResp.ID)
	require.NotEmpty(t, joinResp.TargetEndAt)

	_, err = challengeDomain.Join(ctx, &model.JoinChallengeRequest{
		ChallengeCode: "workout-week-streak",
	})
	requireErrorCode(t, err, errorx.AlreadyJoined)

	mine, err := challengeDomain.GetMyChallenges(ctx, &model.GetMyChallengesRequest{})
	require.NoError(t, err)
	require.Len(t, mine.Challenges, 1)
	require.Equal(t, "workout-week-streak", mine.Challenges[0].ChallengeCode)
	require.Equal(t, "active", mine.Challenges[0].Status)

	_, err = challengeDomain.Abandon(ctx, &model.AbandonChallengeRequest{ID: joinResp.ID})
	require.NoError(t, err)

	mine, err = challengeDomain.GetMyChallenges(ctx, &model.GetMyChallengesRequest{Status: "active"})
	require.NoError(t, err)
	require.Empty(t, mine.Challenges)

	mine, err = challengeDomain.GetMyChallenges(ctx, &model.GetMyChallengesRequest{Status: "abandoned"})
	require.NoError(t, err)
	require.Len(t, mine.Challenges, 1)
}

func Test_challengeDomain_GetList(t *testing.T) {
	ctx := testutil.MockContext()
	challengeDomain := newChallengeDomain(t)

	all, err := challengeDomain.GetList(ctx, &model.GetListChallengeRequest{})
	require.NoError(t, err)
	require.Len(t, all.Challenges, len(challenge.Defaults()))

	workout, err := challengeDomain.GetList(ctx, &model.GetListChallengeRequest{Domain: "workout"})
	require.NoError(t, err)
	require.Len(t, workout.Challenges, 2)

	_, err = challengeDomain.GetList(ctx, &model.GetListChallengeRequest{Domain: "gardening"})
	requireErrorCode(t, err, errorx.BadRequest)
}
