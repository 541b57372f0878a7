package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	base := time.Date(2023, time.June, 10, 23, 59, 0, 0, time.UTC)

	require.Equal(t, 0, DaysBetween(base, base.Add(time.Minute-time.Second)))
	require.Equal(t, 1, DaysBetween(base, base.Add(time.Minute)))
	require.Equal(t, 3, DaysBetween(base, base.AddDate(0, 0, 3)))
	require.Equal(t, -1, DaysBetween(base, base.AddDate(0, 0, -1)))
}

func TestIsNextDay(t *testing.T) {
	morning := time.Date(2023, time.June, 10, 8, 0, 0, 0, time.UTC)
	lateNext := time.Date(2023, time.June, 11, 23, 30, 0, 0, time.UTC)

	require.True(t, IsNextDay(morning, lateNext))
	require.False(t, IsNextDay(morning, morning.Add(2*time.Hour)))
	require.False(t, IsNextDay(morning, morning.AddDate(0, 0, 2)))
	require.True(t, IsSameDay(morning, morning.Add(10*time.Hour)))
}
