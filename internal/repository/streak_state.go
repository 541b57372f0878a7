package repository

import (
	"context"
	"time"

	"github.com/wellnest-app/backend/internal/entity"
	"github.com/wellnest-app/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type StreakStateRepository interface {
	Get(ctx context.Context, userID string, domain entity.ActivityDomain) (*entity.StreakState, error)

	// Create inserts the first streak row for a (user, domain) pair. A
	// concurrent first event conflicts on the composite key and is reported
	// as created=false so the loser can retry as an advance.
	Create(ctx context.Context, state *entity.StreakState) (created bool, err error)

	// Advance writes the new streak values, compare-and-swap keyed on the
	// previously-read last_activity_date. Two same-day events collapse into
	// one transition: the loser observes advanced=false.
	Advance(ctx context.Context, state *entity.StreakState, previousDate time.Time) (advanced bool, err error)
}

type streakStateRepository struct{}

func NewStreakStateRepository() *streakStateRepository {
	return &streakStateRepository{}
}

func (r *streakStateRepository) Get(
	ctx context.Context, userID string, domain entity.ActivityDomain,
) (*entity.StreakState, error) {
	var result entity.StreakState
	err := xcontext.DB(ctx).
		Where("user_id=? AND domain=?", userID, domain).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *streakStateRepository) Create(ctx context.Context, state *entity.StreakState) (bool, error) {
	tx := xcontext.DB(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(state)

	if tx.Error != nil {
		return false, tx.Error
	}

	return tx.RowsAffected == 1, nil
}

func (r *streakStateRepository) Advance(
	ctx context.Context, state *entity.StreakState, previousDate time.Time,
) (bool, error) {
	tx := xcontext.DB(ctx).
		Model(&entity.StreakState{}).
		Where("user_id=? AND domain=? AND last_activity_date=?",
			state.UserID, state.Domain, previousDate).
		Updates(map[string]any{
			"current_streak":     state.CurrentStreak,
			"longest_streak":     state.LongestStreak,
			"last_activity_date": state.LastActivityDate,
		})

	if tx.Error != nil {
		return false, tx.Error
	}

	return tx.RowsAffected == 1, nil
}
