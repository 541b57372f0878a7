package repository

import (
	"context"

	"github.com/wellnest-app/backend/internal/entity"
	"github.com/wellnest-app/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type UserBadgeRepository interface {
	// Award inserts the award row. The composite primary key on
	// (user_id, badge_code) is the sole source of truth for deduplication:
	// a conflicting insert is dropped and reported as created=false. There
	// is no read-before-write, so concurrent awards cannot both create.
	Award(ctx context.Context, userBadge *entity.UserBadge) (created bool, err error)

	GetByUserID(ctx context.Context, userID string) ([]entity.UserBadge, error)
	Has(ctx context.Context, userID, badgeCode string) (bool, error)
}

type userBadgeRepository struct{}

func NewUserBadgeRepository() *userBadgeRepository {
	return &userBadgeRepository{}
}

func (r *userBadgeRepository) Award(ctx context.Context, userBadge *entity.UserBadge) (bool, error) {
	tx := xcontext.DB(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(userBadge)

	if tx.Error != nil {
		return false, tx.Error
	}

	return tx.RowsAffected == 1, nil
}

func (r *userBadgeRepository) GetByUserID(ctx context.Context, userID string) ([]entity.UserBadge, error) {
	var result []entity.UserBadge
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("awarded_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userBadgeRepository) Has(ctx context.Context, userID, badgeCode string) (bool, error) {
	var count int64
	err := xcontext.DB(ctx).
		Model(&entity.UserBadge{}).
		Where("user_id=? AND badge_code=?", userID, badgeCode).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count == 1, nil
}
