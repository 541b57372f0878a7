package repository

import (
	"context"

	"github.com/wellnest-app/backend/internal/entity"
	"github.com/wellnest-app/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type ActivityEventRepository interface {
	// Create inserts the event marker. A replayed event id conflicts on the
	// composite primary key and reports created=false; there is no
	// read-before-write, so concurrent deliveries of the same event agree
	// on a single winner.
	Create(ctx context.Context, event *entity.ActivityEvent) (created bool, err error)
}

type activityEventRepository struct{}

func NewActivityEventRepository() *activityEventRepository {
	return &activityEventRepository{}
}

func (r *activityEventRepository) Create(ctx context.Context, event *entity.ActivityEvent) (bool, error) {
	tx := xcontext.DB(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(event)

	if tx.Error != nil {
		return false, tx.Error
	}

	return tx.RowsAffected == 1, nil
}
