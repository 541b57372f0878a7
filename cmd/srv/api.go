package main

import (
	"net/http"

	"github.com/urfave/cli/v2"
	"github.com/wellnest-app/backend/internal/middleware"
	"github.com/wellnest-app/backend/pkg/router"
	"github.com/wellnest-app/backend/pkg/xcontext"
)

func (s *srv) startApi(cctx *cli.Context) error {
	if err := s.loadConfig(cctx); err != nil {
		return err
	}

	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.loadRedisClient()
	s.loadRepos()
	s.loadCatalog()
	s.loadDomains()

	cfg := xcontext.Configs(s.ctx)

	r := router.New(s.ctx)
	r.AddCloser(middleware.Logger())

	publicRouter := r.Branch()
	{
		router.GET(publicRouter, "/getListChallenge", s.challengeDomain.GetList)
		router.GET(publicRouter, "/getLeaderBoard", s.statisticDomain.GetLeaderBoard)
	}

	authRouter := r.Branch()
	authRouter.Before(middleware.Authenticate(s.accessTokenEngine))
	{
		router.POST(authRouter, "/logActivity", s.progressionDomain.LogActivity)
		router.GET(authRouter, "/getUserLevel", s.progressionDomain.GetUserLevel)

		router.POST(authRouter, "/joinChallenge", s.challengeDomain.Join)
		router.POST(authRouter, "/abandonChallenge", s.challengeDomain.Abandon)
		router.GET(authRouter, "/getMyChallenges", s.challengeDomain.GetMyChallenges)

		router.GET(authRouter, "/getMyBadges", s.badgeDomain.GetMyBadges)
	}

	xcontext.Logger(s.ctx).Infof("Starting server on %s", cfg.ApiServer.Address())

	httpServer := &http.Server{
		Addr:    cfg.ApiServer.Address(),
		Handler: r.Handler(),
	}

	return httpServer.ListenAndServe()
}
