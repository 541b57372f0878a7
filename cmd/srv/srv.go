package main

import (
	"context"

	"github.com/urfave/cli/v2"
	"github.com/wellnest-app/backend/config"
	"github.com/wellnest-app/backend/internal/domain"
	"github.com/wellnest-app/backend/internal/domain/badge"
	"github.com/wellnest-app/backend/internal/domain/challenge"
	"github.com/wellnest-app/backend/internal/domain/leaderboard"
	"github.com/wellnest-app/backend/internal/domain/streak"
	"github.com/wellnest-app/backend/internal/model"
	"github.com/wellnest-app/backend/internal/repository"
	"github.com/wellnest-app/backend/pkg/authenticator"
	"github.com/wellnest-app/backend/pkg/logger"
	"github.com/wellnest-app/backend/pkg/xcontext"
	"github.com/wellnest-app/backend/pkg/xredis"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App
	ctx context.Context

	userRepo          repository.UserRepository
	activityEventRepo repository.ActivityEventRepository
	userLevelRepo     repository.UserLevelRepository
	badgeRepo         repository.BadgeRepository
	userBadgeRepo     repository.UserBadgeRepository
	streakRepo        repository.StreakStateRepository
	userChallengeRepo repository.UserChallengeRepository
	xpAwardRepo       repository.XPAwardRepository

	badgeCatalog      badge.Catalog
	challengeRegistry *challenge.Registry

	streakTracker    *streak.Tracker
	badgeManager     *badge.Manager
	challengeManager *challenge.Manager
	leaderboard      leaderboard.Leaderboard

	progressionDomain domain.ProgressionDomain
	challengeDomain   domain.ChallengeDomain
	badgeDomain       domain.BadgeDomain
	statisticDomain   domain.StatisticDomain

	redisClient xredis.Client

	accessTokenEngine authenticator.TokenEngine[model.AccessToken]
}

func (s *srv) loadConfig(cctx *cli.Context) error {
	cfg, err := config.Load(cctx.String("config"))
	if err != nil {
		return err
	}

	level := logger.INFO
	if cfg.Env == "local" {
		level = logger.DEBUG
	}

	s.ctx = context.Background()
	s.ctx = xcontext.WithConfigs(s.ctx, cfg)
	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(level))

	return nil
}

func (s *srv) newDatabase() *gorm.DB {
	cfg := xcontext.Configs(s.ctx)
	db, err := gorm.Open(mysql.Open(cfg.Database.ConnectionString()), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	return db
}

func (s *srv) loadRedisClient() {
	var err error
	s.redisClient, err = xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.activityEventRepo = repository.NewActivityEventRepository()
	s.userLevelRepo = repository.NewUserLevelRepository()
	s.badgeRepo = repository.NewBadgeRepository()
	s.userBadgeRepo = repository.NewUserBadgeRepository()
	s.streakRepo = repository.NewStreakStateRepository()
	s.userChallengeRepo = repository.NewUserChallengeRepository()
	s.xpAwardRepo = repository.NewXPAwardRepository()
}

func (s *srv) loadCatalog() {
	registry, err := challenge.NewRegistry(challenge.Defaults()...)
	if err != nil {
		panic(err)
	}

	s.challengeRegistry = registry
	s.badgeCatalog = badge.NewCatalog().WithChallengeBadges(registry.ChallengeBadges())
}

func (s *srv) loadDomains() {
	s.streakTracker = streak.NewTracker(s.streakRepo)
	s.badgeManager = badge.NewManager(s.badgeCatalog, s.userBadgeRepo)
	s.challengeManager = challenge.NewManager(s.challengeRegistry, s.userChallengeRepo)
	s.leaderboard = leaderboard.New(s.xpAwardRepo, s.redisClient)

	s.progressionDomain = domain.NewProgressionDomain(
		s.activityEventRepo,
		s.userLevelRepo,
		s.xpAwardRepo,
		s.streakTracker,
		s.badgeManager,
		s.challengeManager,
		s.leaderboard,
	)
	s.challengeDomain = domain.NewChallengeDomain(s.challengeManager, s.userChallengeRepo)
	s.badgeDomain = domain.NewBadgeDomain(s.badgeManager)
	s.statisticDomain = domain.NewStatisticDomain(s.leaderboard, s.userRepo)

	s.accessTokenEngine = authenticator.NewTokenEngine[model.AccessToken](
		xcontext.Configs(s.ctx).Auth.AccessToken)
}
