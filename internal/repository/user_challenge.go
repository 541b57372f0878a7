package repository

import (
	"context"
	"time"

	"github.com/wellnest-app/backend/internal/entity"
	"github.com/wellnest-app/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type UserChallengeRepository interface {
	// Create inserts the participation row. The unique index over
	// (user_id, challenge_code, active) is the sole source of truth for
	// duplicate joins: a conflicting insert is dropped and reported as
	// created=false. There is no read-before-write, so two concurrent
	// joins cannot both create an active row.
	Create(ctx context.Context, userChallenge *entity.UserChallenge) (created bool, err error)
	GetByID(ctx context.Context, id string) (*entity.UserChallenge, error)
	GetListByUserID(ctx context.Context, userID string, status entity.UserChallengeStatus) ([]entity.UserChallenge, error)
	GetActiveByDomain(ctx context.Context, userID string, domain entity.ActivityDomain) ([]entity.UserChallenge, error)

	// UpdateProgress writes a recomputed progress value. The update only
	// applies while the row is still active; a terminal row reports
	// updated=false and stays untouched.
	UpdateProgress(ctx context.Context, id string, progress int) (updated bool, err error)

	// Complete moves an active row to completed. The status guard makes the
	// transition exactly-once: a second concurrent completion or a racing
	// expiry sweep observes completed=false.
	Complete(ctx context.Context, id string, completedAt time.Time) (completed bool, err error)

	// Terminate moves an active row to abandoned or failed.
	Terminate(ctx context.Context, id string, status entity.UserChallengeStatus) (terminated bool, err error)

	GetExpired(ctx context.Context, now time.Time) ([]entity.UserChallenge, error)
}

type userChallengeRepository struct{}

func NewUserChallengeRepository() *userChallengeRepository {
	return &userChallengeRepository{}
}

func (r *userChallengeRepository) Create(ctx context.Context, userChallenge *entity.UserChallenge) (bool, error) {
	tx := xcontext.DB(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(userChallenge)

	if tx.Error != nil {
		return false, tx.Error
	}

	return tx.RowsAffected == 1, nil
}

func (r *userChallengeRepository) GetByID(ctx context.Context, id string) (*entity.UserChallenge, error) {
	var result entity.UserChallenge
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *userChallengeRepository) GetListByUserID(
	ctx context.Context, userID string, status entity.UserChallengeStatus,
) ([]entity.UserChallenge, error) {
	tx := xcontext.DB(ctx).Where("user_id=?", userID)
	if status != "" {
		tx = tx.Where("status=?", status)
	}

	var result []entity.UserChallenge
	if err := tx.Order("joined_at ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userChallengeRepository) GetActiveByDomain(
	ctx context.Context, userID string, domain entity.ActivityDomain,
) ([]entity.UserChallenge, error) {
	var result []entity.UserChallenge
	err := xcontext.DB(ctx).
		Where("user_id=? AND domain=? AND status=?", userID, domain, entity.ChallengeActive).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userChallengeRepository) UpdateProgress(ctx context.Context, id string, progress int) (bool, error) {
	tx := xcontext.DB(ctx).
		Model(&entity.UserChallenge{}).
		Where("id=? AND status=?", id, entity.ChallengeActive).
		Update("progress", progress)

	if tx.Error != nil {
		return false, tx.Error
	}

	return tx.RowsAffected == 1, nil
}

func (r *userChallengeRepository) Complete(ctx context.Context, id string, completedAt time.Time) (bool, error) {
	tx := xcontext.DB(ctx).
		Model(&entity.UserChallenge{}).
		Where("id=? AND status=?", id, entity.ChallengeActive).
		Updates(map[string]any{
			"status":       entity.ChallengeCompleted,
			"active":       nil,
			"progress":     100,
			"completed_at": completedAt,
		})

	if tx.Error != nil {
		return false, tx.Error
	}

	return tx.RowsAffected == 1, nil
}

func (r *userChallengeRepository) Terminate(
	ctx context.Context, id string, status entity.UserChallengeStatus,
) (bool, error) {
	tx := xcontext.DB(ctx).
		Model(&entity.UserChallenge{}).
		Where("id=? AND status=?", id, entity.ChallengeActive).
		Updates(map[string]any{"status": status, "active": nil})

	if tx.Error != nil {
		return false, tx.Error
	}

	return tx.RowsAffected == 1, nil
}

func (r *userChallengeRepository) GetExpired(ctx context.Context, now time.Time) ([]entity.UserChallenge, error) {
	var result []entity.UserChallenge
	err := xcontext.DB(ctx).
		Where("status=? AND target_end_at IS NOT NULL AND target_end_at < ?",
			entity.ChallengeActive, now).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
