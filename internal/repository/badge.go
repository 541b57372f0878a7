package repository

import (
	"context"

	"github.com/wellnest-app/backend/internal/entity"
	"github.com/wellnest-app/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type BadgeRepository interface {
	// Upsert mirrors a catalog definition into the database. Called once at
	// migration time for every badge in the static catalog.
	Upsert(ctx context.Context, badge *entity.Badge) error
	GetAll(ctx context.Context) ([]entity.Badge, error)
}

type badgeRepository struct{}

func NewBadgeRepository() *badgeRepository {
	return &badgeRepository{}
}

func (r *badgeRepository) Upsert(ctx context.Context, badge *entity.Badge) error {
	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			UpdateAll: true,
		}).
		Create(badge).Error
}

func (r *badgeRepository) GetAll(ctx context.Context) ([]entity.Badge, error) {
	var result []entity.Badge
	if err := xcontext.DB(ctx).Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}
