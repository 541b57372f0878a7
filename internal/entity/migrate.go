package entity

import (
	"context"

	"github.com/wellnest-app/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&ActivityEvent{},
		&UserLevel{},
		&Badge{},
		&UserBadge{},
		&StreakState{},
		&UserChallenge{},
		&XPAward{},
	)
}
