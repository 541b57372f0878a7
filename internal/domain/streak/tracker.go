// Package streak maintains consecutive-day activity counters per user and
// domain.
package streak

import (
	"context"
	"errors"
	"time"

	"github.com/wellnest-app/backend/internal/domain/badge"
	"github.com/wellnest-app/backend/internal/entity"
	"github.com/wellnest-app/backend/internal/repository"
	"github.com/wellnest-app/backend/pkg/dateutil"
	"github.com/wellnest-app/backend/pkg/errorx"
	"github.com/wellnest-app/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// Transition is the observable outcome of one activity event: the streak
// before and after, and the longest streak on record. A same-day event leaves
// Previous == Current.
type Transition struct {
	Previous int
	Current  int
	Longest  int
}

type Tracker struct {
	streakRepo repository.StreakStateRepository
}

func NewTracker(streakRepo repository.StreakStateRepository) *Tracker {
	return &Tracker{streakRepo: streakRepo}
}

// Track applies an activity event dated date to the (user, domain) streak.
// The caller supplies the date in the user's local calendar; no timezone is
// inferred here. A second event on the same calendar day is a no-op, so the
// operation is idempotent per day and commutative under concurrent delivery.
func (t *Tracker) Track(
	ctx context.Context, userID string, domain entity.ActivityDomain, date time.Time,
) (Transition, error) {
	day := dateutil.Day(date)

	state, err := t.streakRepo.Get(ctx, userID, domain)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get streak state: %v", err)
			return Transition{}, errorx.Unknown
		}

		created, err := t.streakRepo.Create(ctx, &entity.StreakState{
			UserID:           userID,
			Domain:           domain,
			CurrentStreak:    1,
			LongestStreak:    1,
			LastActivityDate: day,
		})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create streak state: %v", err)
			return Transition{}, errorx.Unknown
		}

		if created {
			return Transition{Previous: 0, Current: 1, Longest: 1}, nil
		}

		// A concurrent first event created the row; fall through and apply
		// this event against it.
		state, err = t.streakRepo.Get(ctx, userID, domain)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get streak state after conflict: %v", err)
			return Transition{}, errorx.Unknown
		}
	}

	if dateutil.IsSameDay(state.LastActivityDate, day) {
		return noopTransition(state), nil
	}

	next := entity.StreakState{
		UserID:           userID,
		Domain:           domain,
		LastActivityDate: day,
	}

	if dateutil.IsNextDay(state.LastActivityDate, day) {
		next.CurrentStreak = state.CurrentStreak + 1
	} else {
		// Gap, or an out-of-order date. The streak restarts at one.
		next.CurrentStreak = 1
	}

	next.LongestStreak = state.LongestStreak
	if next.CurrentStreak > next.LongestStreak {
		next.LongestStreak = next.CurrentStreak
	}

	advanced, err := t.streakRepo.Advance(ctx, &next, state.LastActivityDate)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot advance streak state: %v", err)
		return Transition{}, errorx.Unknown
	}

	if !advanced {
		// A concurrent event moved the streak first. Both events carry the
		// same calendar day in practice, so this event collapses to a no-op
		// against the fresh row.
		state, err = t.streakRepo.Get(ctx, userID, domain)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get streak state after losing race: %v", err)
			return Transition{}, errorx.Unknown
		}

		return noopTransition(state), nil
	}

	return Transition{
		Previous: state.CurrentStreak,
		Current:  next.CurrentStreak,
		Longest:  next.LongestStreak,
	}, nil
}

func (t *Tracker) Get(
	ctx context.Context, userID string, domain entity.ActivityDomain,
) (*entity.StreakState, error) {
	state, err := t.streakRepo.Get(ctx, userID, domain)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entity.StreakState{UserID: userID, Domain: domain}, nil
		}

		xcontext.Logger(ctx).Errorf("Cannot get streak state: %v", err)
		return nil, errorx.Unknown
	}

	return state, nil
}

// DaysToNextMilestone is a pure lookup for UI progress display.
func (t *Tracker) DaysToNextMilestone(streak int) (int, bool) {
	return badge.DaysToNextMilestone(streak)
}

func noopTransition(state *entity.StreakState) Transition {
	return Transition{
		Previous: state.CurrentStreak,
		Current:  state.CurrentStreak,
		Longest:  state.LongestStreak,
	}
}
