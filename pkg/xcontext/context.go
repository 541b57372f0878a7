package xcontext

import (
	"context"

	"github.com/wellnest-app/backend/config"
	"github.com/wellnest-app/backend/pkg/logger"
	"gorm.io/gorm"
)

type (
	dbKey            struct{}
	dbTransactionKey struct{}
	loggerKey        struct{}
	configsKey       struct{}
	userIDKey        struct{}
)

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

// DB returns the database handle carried by the context. If a transaction was
// opened with WithDBTransaction, it is returned instead of the root handle.
func DB(ctx context.Context) *gorm.DB {
	if tx := ctx.Value(dbTransactionKey{}); tx != nil {
		return tx.(*gorm.DB)
	}

	db := ctx.Value(dbKey{})
	if db == nil {
		panic("no database in context")
	}

	return db.(*gorm.DB)
}

// WithDBTransaction begins a transaction and makes it the value returned by
// DB until it is committed or rolled back.
func WithDBTransaction(ctx context.Context) context.Context {
	return context.WithValue(ctx, dbTransactionKey{}, DB(ctx).Begin())
}

func WithCommitDBTransaction(ctx context.Context) context.Context {
	tx := ctx.Value(dbTransactionKey{})
	if tx == nil {
		return ctx
	}

	tx.(*gorm.DB).Commit()
	return context.WithValue(ctx, dbTransactionKey{}, nil)
}

// WithRollbackDBTransaction rolls back the current transaction. It is a no-op
// if the transaction has already been committed.
func WithRollbackDBTransaction(ctx context.Context) context.Context {
	tx := ctx.Value(dbTransactionKey{})
	if tx == nil {
		return ctx
	}

	tx.(*gorm.DB).Rollback()
	return context.WithValue(ctx, dbTransactionKey{}, nil)
}

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func Logger(ctx context.Context) logger.Logger {
	l := ctx.Value(loggerKey{})
	if l == nil {
		return logger.NewLogger(logger.INFO)
	}

	return l.(logger.Logger)
}

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	cfg := ctx.Value(configsKey{})
	if cfg == nil {
		panic("no configs in context")
	}

	return cfg.(config.Configs)
}

func WithRequestUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

func RequestUserID(ctx context.Context) string {
	id := ctx.Value(userIDKey{})
	if id == nil {
		return ""
	}

	return id.(string)
}
