package testutil

import (
	"context"
	"time"

	"github.com/wellnest-app/backend/config"
	"github.com/wellnest-app/backend/internal/entity"
	"github.com/wellnest-app/backend/internal/repository"
	"github.com/wellnest-app/backend/pkg/logger"
	"github.com/wellnest-app/backend/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	// Every pooled connection to :memory: is its own empty database, so the
	// pool is pinned to a single connection. Concurrent test goroutines
	// serialize here instead of scattering across databases.
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	cfg := config.Configs{
		Env: "test",
		Auth: config.AuthConfigs{
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Secret:     "secret",
				Expiration: config.Duration(time.Minute),
			},
		},
		Progression: config.ProgressionConfigs{
			ChallengeSweepInterval: config.Duration(time.Hour),
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	InsertUsers(ctx)

	return ctx
}

func MockContextWithUserID(userID string) context.Context {
	return xcontext.WithRequestUserID(MockContext(), userID)
}

func InsertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()

	// user1
	err := userRepo.Create(ctx, &entity.User{
		Base: entity.Base{ID: "user1"},
		Name: "user1",
	})
	if err != nil {
		panic(err)
	}

	// user2
	err = userRepo.Create(ctx, &entity.User{
		Base: entity.Base{ID: "user2"},
		Name: "user2",
	})
	if err != nil {
		panic(err)
	}
}
