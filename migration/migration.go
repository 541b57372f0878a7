package migration

import (
	"context"

	"github.com/wellnest-app/backend/internal/domain/badge"
	"github.com/wellnest-app/backend/internal/entity"
	"github.com/wellnest-app/backend/internal/repository"
	"github.com/wellnest-app/backend/pkg/xcontext"
)

// Migrate creates the schema and seeds the badge catalog. Catalog rows are
// upserted, so redefining a badge title or requirement takes effect on the
// next run.
func Migrate(ctx context.Context, catalog badge.Catalog) error {
	if err := entity.MigrateTable(ctx); err != nil {
		return err
	}

	// Seed the catalog in one transaction so a failed run leaves no partial
	// catalog behind.
	ctx = xcontext.WithDBTransaction(ctx)

	badgeRepo := repository.NewBadgeRepository()
	for _, b := range catalog.All() {
		b := b
		if err := badgeRepo.Upsert(ctx, &b); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot upsert badge %s: %v", b.Code, err)
			xcontext.WithRollbackDBTransaction(ctx)
			return err
		}
	}

	xcontext.WithCommitDBTransaction(ctx)
	return nil
}
