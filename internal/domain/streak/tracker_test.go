package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wellnest-app/backend/internal/entity"
	"github.com/wellnest-app/backend/internal/repository"
	"github.com/wellnest-app/backend/pkg/testutil"
)

func Test_Tracker_Track(t *testing.T) {
	ctx := testutil.MockContext()
	tracker := NewTracker(repository.NewStreakStateRepository())

	day1 := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	transition, err := tracker.Track(ctx, "user1", entity.DomainWorkout, day1)
	require.NoError(t, err)
	require.Equal(t, Transition{Previous: 0, Current: 1, Longest: 1}, transition)

	// A second event on the same day changes nothing, whatever its hour.
	transition, err = tracker.Track(ctx, "user1", entity.DomainWorkout, day1.Add(8*time.Hour))
	require.NoError(t, err)
	require.Equal(t, Transition{Previous: 1, Current: 1, Longest: 1}, transition)

	transition, err = tracker.Track(ctx, "user1", entity.DomainWorkout, day1.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Equal(t, Transition{Previous: 1, Current: 2, Longest: 2}, transition)

	// A gap resets the streak but the longest stays on record.
	transition, err = tracker.Track(ctx, "user1", entity.DomainWorkout, day1.AddDate(0, 0, 4))
	require.NoError(t, err)
	require.Equal(t, Transition{Previous: 2, Current: 1, Longest: 2}, transition)

	// Streaks are independent per domain.
	transition, err = tracker.Track(ctx, "user1", entity.DomainNutrition, day1.AddDate(0, 0, 4))
	require.NoError(t, err)
	require.Equal(t, Transition{Previous: 0, Current: 1, Longest: 1}, transition)

	state, err := tracker.Get(ctx, "user1", entity.DomainWorkout)
	require.NoError(t, err)
	require.Equal(t, 1, state.CurrentStreak)
	require.Equal(t, 2, state.LongestStreak)
}

func Test_Tracker_Get_WithoutHistory(t *testing.T) {
	ctx := testutil.MockContext()
	tracker := NewTracker(repository.NewStreakStateRepository())

	state, err := tracker.Get(ctx, "user1", entity.DomainHydration)
	require.NoError(t, err)
	require.Equal(t, 0, state.CurrentStreak)
	require.Equal(t, 0, state.LongestStreak)
}
