package challenge

import (
	"time"

	"github.com/wellnest-app/backend/pkg/dateutil"
	"github.com/wellnest-app/backend/pkg/enum"
)

type TargetType string

var (
	TargetStreak   = enum.New(TargetType("streak"))
	TargetCount    = enum.New(TargetType("count"))
	TargetDaily    = enum.New(TargetType("daily"))
	TargetCombined = enum.New(TargetType("combined"))
)

// Snapshot carries the caller-observed counters a progress calculation runs
// against. The engine never re-derives these from raw activity logs.
type Snapshot struct {
	CurrentStreak int
	TotalCount    int
	ActiveDays    []time.Time

	// EventDate anchors rolling windows; JoinedAt bounds progress to days
	// after the user joined.
	EventDate time.Time
	JoinedAt  time.Time
}

// Target is one shape of challenge goal. Progress returns a 0-100 percent,
// already clamped.
type Target interface {
	Type() TargetType
	Progress(s Snapshot) int
}

type StreakTarget struct {
	Days int
}

func (t StreakTarget) Type() TargetType { return TargetStreak }

func (t StreakTarget) Progress(s Snapshot) int {
	if t.Days <= 0 {
		return 100
	}

	return clampPercent(s.CurrentStreak * 100 / t.Days)
}

type CountTarget struct {
	Count int
}

func (t CountTarget) Type() TargetType { return TargetCount }

func (t CountTarget) Progress(s Snapshot) int {
	if t.Count <= 0 {
		return 100
	}

	return clampPercent(s.TotalCount * 100 / t.Count)
}

// DailyTarget succeeds when the domain action occurs on Count distinct
// calendar days inside a WindowDays-day window ending at the event date. Days
// before the user joined the challenge never count.
type DailyTarget struct {
	Count      int
	WindowDays int
}

func (t DailyTarget) Type() TargetType { return TargetDaily }

func (t DailyTarget) Progress(s Snapshot) int {
	if t.Count <= 0 {
		return 100
	}

	// Days are keyed by their calendar date only, so the same day reported
	// in two locations still counts once.
	seen := map[string]struct{}{}
	for _, d := range s.ActiveDays {
		day := dateutil.Day(d)
		if day.Before(dateutil.Day(s.JoinedAt)) {
			continue
		}

		if t.WindowDays > 0 {
			age := dateutil.DaysBetween(day, s.EventDate)
			if age < 0 || age >= t.WindowDays {
				continue
			}
		}

		seen[day.Format("2006-01-02")] = struct{}{}
	}

	return clampPercent(len(seen) * 100 / t.Count)
}

// CombinedTarget succeeds when all sub-targets succeed; its progress is the
// minimum of the sub-target progresses.
type CombinedTarget struct {
	Subs []Target
}

func (t CombinedTarget) Type() TargetType { return TargetCombined }

func (t CombinedTarget) Progress(s Snapshot) int {
	if len(t.Subs) == 0 {
		return 0
	}

	progress := 100
	for _, sub := range t.Subs {
		if p := sub.Progress(s); p < progress {
			progress = p
		}
	}

	return progress
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}

	return p
}
