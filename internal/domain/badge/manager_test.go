package badge

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wellnest-app/backend/internal/entity"
	"github.com/wellnest-app/backend/internal/repository"
	"github.com/wellnest-app/backend/pkg/errorx"
	"github.com/wellnest-app/backend/pkg/testutil"
)

func Test_Manager_Award_Concurrent(t *testing.T) {
	ctx := testutil.MockContext()
	manager := NewManager(NewCatalog(), repository.NewUserBadgeRepository())

	code := MilestoneBadgeCode(entity.DomainWorkout, 7)

	// Two simultaneous awards both succeed, exactly one creates the row.
	var wg sync.WaitGroup
	awarded := make([]bool, 2)
	errs := make([]error, 2)
	for i := range awarded {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			awarded[i], errs[i] = manager.Award(ctx, "user1", code)
		}()
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	require.NotEqual(t, awarded[0], awarded[1])

	badges, err := manager.GetUserBadges(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, badges, 1)
}

func Test_Manager_Award_Idempotent(t *testing.T) {
	ctx := testutil.MockContext()
	manager := NewManager(NewCatalog(), repository.NewUserBadgeRepository())

	code := MilestoneBadgeCode(entity.DomainWorkout, 7)

	awarded, err := manager.Award(ctx, "user1", code)
	require.NoError(t, err)
	require.True(t, awarded)

	// A repeated award succeeds without creating a second row.
	awarded, err = manager.Award(ctx, "user1", code)
	require.NoError(t, err)
	require.False(t, awarded)

	badges, err := manager.GetUserBadges(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, badges, 1)
	require.Equal(t, code, badges[0].BadgeCode)

	has, err := manager.HasBadge(ctx, "user1", code)
	require.NoError(t, err)
	require.True(t, has)

	has, err = manager.HasBadge(ctx, "user2", code)
	require.NoError(t, err)
	require.False(t, has)
}

func Test_Manager_Award_UnknownCode(t *testing.T) {
	ctx := testutil.MockContext()
	manager := NewManager(NewCatalog(), repository.NewUserBadgeRepository())

	_, err := manager.Award(ctx, "user1", "no-such-badge")

	errx := errorx.Error{}
	require.True(t, errors.As(err, &errx))
	require.Equal(t, errorx.NotFound, errx.Code)
}

func Test_Catalog_WithChallengeBadges(t *testing.T) {
	catalog := NewCatalog().WithChallengeBadges([]ChallengeBadge{
		{
			ChallengeCode: "workout-week-streak",
			Rarity:        entity.BadgeRarityUncommon,
			Title:         "One week strong",
		},
	})

	b, ok := catalog.Get(ChallengeBadgeCode("workout-week-streak"))
	require.True(t, ok)
	require.Equal(t, entity.BadgeCategoryChallenge, b.Category)
	require.Equal(t, entity.BadgeRarityUncommon, b.Rarity)
}
