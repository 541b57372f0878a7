package main

import (
	"github.com/urfave/cli/v2"
	"github.com/wellnest-app/backend/internal/domain/challenge"
	"github.com/wellnest-app/backend/internal/domain/cron"
	"github.com/wellnest-app/backend/pkg/xcontext"
)

func (s *srv) startCron(cctx *cli.Context) error {
	if err := s.loadConfig(cctx); err != nil {
		return err
	}

	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.loadRepos()
	s.loadCatalog()

	challengeManager := challenge.NewManager(s.challengeRegistry, s.userChallengeRepo)

	cronJobManager := cron.NewCronJobManager()
	cronJobManager.Register(cron.NewExpireChallengesCronJob(
		challengeManager,
		xcontext.Configs(s.ctx).Progression.ChallengeSweepInterval.Std(),
	))
	cronJobManager.Start(s.ctx)

	return nil
}
