package repository

import (
	"context"
	"time"

	"github.com/wellnest-app/backend/internal/entity"
	"github.com/wellnest-app/backend/pkg/xcontext"
)

type UserXPSum struct {
	UserID string
	Total  int64
}

type XPAwardRepository interface {
	Create(ctx context.Context, award *entity.XPAward) error

	// SumByUser aggregates awarded XP per user inside [start, end). Zero
	// times mean an unbounded side.
	SumByUser(ctx context.Context, start, end time.Time) ([]UserXPSum, error)
}

type xpAwardRepository struct{}

func NewXPAwardRepository() *xpAwardRepository {
	return &xpAwardRepository{}
}

func (r *xpAwardRepository) Create(ctx context.Context, award *entity.XPAward) error {
	return xcontext.DB(ctx).Create(award).Error
}

func (r *xpAwardRepository) SumByUser(ctx context.Context, start, end time.Time) ([]UserXPSum, error) {
	tx := xcontext.DB(ctx).
		Model(&entity.XPAward{}).
		Select("user_id, SUM(amount) as total").
		Group("user_id")

	if !start.IsZero() {
		tx = tx.Where("created_at >= ?", start)
	}

	if !end.IsZero() {
		tx = tx.Where("created_at < ?", end)
	}

	var result []UserXPSum
	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}
