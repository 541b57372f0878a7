package challenge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_StreakTarget_Progress(t *testing.T) {
	target := StreakTarget{Days: 7}

	require.Equal(t, 0, target.Progress(Snapshot{CurrentStreak: 0}))
	require.Equal(t, 42, target.Progress(Snapshot{CurrentStreak: 3}))
	require.Equal(t, 100, target.Progress(Snapshot{CurrentStreak: 7}))

	// Overshooting clamps.
	require.Equal(t, 100, target.Progress(Snapshot{CurrentStreak: 12}))
}

func Test_CountTarget_Progress(t *testing.T) {
	target := CountTarget{Count: 30}

	require.Equal(t, 50, target.Progress(Snapshot{TotalCount: 15}))
	require.Equal(t, 100, target.Progress(Snapshot{TotalCount: 45}))
}

func Test_DailyTarget_Progress(t *testing.T) {
	target := DailyTarget{Count: 3, WindowDays: 7}

	joined := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	event := time.Date(2024, 3, 16, 20, 0, 0, 0, time.UTC)

	snapshot := Snapshot{
		EventDate: event,
		JoinedAt:  joined,
		ActiveDays: []time.Time{
			time.Date(2024, 3, 8, 7, 0, 0, 0, time.UTC),  // before joining, ignored
			time.Date(2024, 3, 11, 7, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 11, 19, 0, 0, 0, time.UTC), // same day counted once
			time.Date(2024, 3, 16, 9, 0, 0, 0, time.UTC),
		},
	}
	require.Equal(t, 66, target.Progress(snapshot))

	// Days fall out of the rolling window as the event date moves on.
	snapshot.EventDate = time.Date(2024, 3, 20, 8, 0, 0, 0, time.UTC)
	require.Equal(t, 33, target.Progress(snapshot))

	snapshot.EventDate = time.Date(2024, 3, 25, 8, 0, 0, 0, time.UTC)
	require.Equal(t, 0, target.Progress(snapshot))
}

func Test_DailyTarget_Progress_MixedLocations(t *testing.T) {
	target := DailyTarget{Count: 3, WindowDays: 7}

	helsinki := time.FixedZone("EET", 2*60*60)

	// March 11 reported from two locations is still one calendar day.
	snapshot := Snapshot{
		EventDate: time.Date(2024, 3, 16, 20, 0, 0, 0, time.UTC),
		JoinedAt:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		ActiveDays: []time.Time{
			time.Date(2024, 3, 11, 7, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 11, 19, 0, 0, 0, helsinki),
		},
	}
	require.Equal(t, 33, target.Progress(snapshot))
}

func Test_CombinedTarget_Progress_IsMinimum(t *testing.T) {
	target := CombinedTarget{Subs: []Target{
		StreakTarget{Days: 10}, // 40
		CountTarget{Count: 10}, // 90
		CountTarget{Count: 5},  // 100, clamped
	}}

	snapshot := Snapshot{CurrentStreak: 4, TotalCount: 9}
	require.Equal(t, 40, target.Progress(snapshot))

	require.Equal(t, 0, CombinedTarget{}.Progress(snapshot))
}
