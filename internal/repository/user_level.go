package repository

import (
	"context"
	"errors"

	"github.com/wellnest-app/backend/internal/entity"
	"github.com/wellnest-app/backend/pkg/xcontext"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserLevelRepository interface {
	Get(ctx context.Context, userID string) (*entity.UserLevel, error)

	// EnsureRow creates the initial aggregate row if it does not exist yet.
	// It is safe to call concurrently for the same user.
	EnsureRow(ctx context.Context, userID string) error

	// AddXP increments total_xp in a single statement. Concurrent awards for
	// the same user never lose updates.
	AddXP(ctx context.Context, userID string, amount int64) error

	// SyncDerived writes the level fields derived from a known total_xp. The
	// write is compare-and-swap keyed on total_xp: if another award has moved
	// the total in the meantime, the write is skipped and reported false, and
	// that other award syncs the fresher value instead.
	SyncDerived(ctx context.Context, userID string, totalXP int64, level int, currentXP int64, tier entity.Tier) (bool, error)
}

type userLevelRepository struct{}

func NewUserLevelRepository() *userLevelRepository {
	return &userLevelRepository{}
}

func (r *userLevelRepository) Get(ctx context.Context, userID string) (*entity.UserLevel, error) {
	var result entity.UserLevel
	err := xcontext.DB(ctx).Where("user_id=?", userID).Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *userLevelRepository) EnsureRow(ctx context.Context, userID string) error {
	row := &entity.UserLevel{
		UserID: userID,
		Level:  1,
		Tier:   entity.TierBronze,
	}

	return xcontext.DB(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(row).Error
}

func (r *userLevelRepository) AddXP(ctx context.Context, userID string, amount int64) error {
	tx := xcontext.DB(ctx).
		Model(&entity.UserLevel{}).
		Where("user_id=?", userID).
		Update("total_xp", gorm.Expr("total_xp+?", amount))

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected > 1 {
		return errors.New("the number of affected rows is invalid")
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *userLevelRepository) SyncDerived(
	ctx context.Context, userID string, totalXP int64, level int, currentXP int64, tier entity.Tier,
) (bool, error) {
	tx := xcontext.DB(ctx).
		Model(&entity.UserLevel{}).
		Where("user_id=? AND total_xp=?", userID, totalXP).
		Updates(map[string]any{
			"level":      level,
			"current_xp": currentXP,
			"tier":       tier,
		})

	if tx.Error != nil {
		return false, tx.Error
	}

	return tx.RowsAffected == 1, nil
}
