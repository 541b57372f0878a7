package main

import (
	"github.com/urfave/cli/v2"
	"github.com/wellnest-app/backend/migration"
	"github.com/wellnest-app/backend/pkg/xcontext"
)

func (s *srv) startMigrate(cctx *cli.Context) error {
	if err := s.loadConfig(cctx); err != nil {
		return err
	}

	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.loadCatalog()

	return migration.Migrate(s.ctx, s.badgeCatalog)
}
