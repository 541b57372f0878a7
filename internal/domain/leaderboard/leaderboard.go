// Package leaderboard ranks users by awarded XP over calendar windows. The
// ranking lives in redis sorted sets and is rebuilt lazily from the XP award
// history when a set is missing.
package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wellnest-app/backend/internal/model"
	"github.com/wellnest-app/backend/internal/repository"
	"github.com/wellnest-app/backend/pkg/errorx"
	"github.com/wellnest-app/backend/pkg/xcontext"
	"github.com/wellnest-app/backend/pkg/xredis"
)

type Leaderboard interface {
	GetLeaderBoard(ctx context.Context, period string, at time.Time, offset, limit int) ([]model.UserStatistic, error)
	GetRank(ctx context.Context, userID, period string, at time.Time) (uint64, error)

	// ChangeXPLeaderboard bumps the user's score in every periodic set the
	// award falls into. Sets that are not materialized yet are skipped; they
	// will be rebuilt from history on first read.
	ChangeXPLeaderboard(ctx context.Context, value int64, at time.Time, userID string) error
}

type leaderboard struct {
	xpAwardRepo repository.XPAwardRepository
	redisClient xredis.Client
}

func New(xpAwardRepo repository.XPAwardRepository, redisClient xredis.Client) *leaderboard {
	return &leaderboard{xpAwardRepo: xpAwardRepo, redisClient: redisClient}
}

func redisKey(p Period) string {
	return fmt.Sprintf("leaderboard:xp:%s", p.Key())
}

func (l *leaderboard) GetLeaderBoard(
	ctx context.Context, period string, at time.Time, offset, limit int,
) ([]model.UserStatistic, error) {
	p, err := ToPeriod(period, at)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid period: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid period")
	}

	if err := l.ensureLoaded(ctx, p); err != nil {
		return nil, err
	}

	results, err := l.redisClient.ZRevRangeWithScores(ctx, redisKey(p), offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get revrange redis: %v", err)
		return nil, errorx.Unknown
	}

	board := []model.UserStatistic{}
	for i, z := range results {
		board = append(board, model.UserStatistic{
			UserID:      z.Member.(string),
			Value:       int(z.Score),
			CurrentRank: offset + i + 1,
		})
	}

	return board, nil
}

func (l *leaderboard) GetRank(
	ctx context.Context, userID, period string, at time.Time,
) (uint64, error) {
	p, err := ToPeriod(period, at)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid period: %v", err)
		return 0, errorx.New(errorx.BadRequest, "Invalid period")
	}

	if err := l.ensureLoaded(ctx, p); err != nil {
		return 0, err
	}

	rank, err := l.redisClient.ZRevRank(ctx, redisKey(p), userID)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot get rev rank redis: %v", err)
		return 0, nil
	}

	return rank + 1, nil
}

func (l *leaderboard) ChangeXPLeaderboard(
	ctx context.Context, value int64, at time.Time, userID string,
) error {
	for _, name := range []string{"week", "month", "total"} {
		p, err := ToPeriod(name, at)
		if err != nil {
			return err
		}

		key := redisKey(p)
		ok, err := l.redisClient.Exist(ctx, key)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot call exist redis: %v", err)
			return errorx.Unknown
		}

		// A missing set is rebuilt from the award history on first read, so
		// there is nothing to bump now.
		if !ok {
			continue
		}

		if err := l.redisClient.ZIncrBy(ctx, key, value, userID); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot call ZIncrBy redis: %v", err)
			return errorx.Unknown
		}
	}

	return nil
}

func (l *leaderboard) ensureLoaded(ctx context.Context, p Period) error {
	key := redisKey(p)
	ok, err := l.redisClient.Exist(ctx, key)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call exist redis: %v", err)
		return errorx.Unknown
	}

	if ok {
		return nil
	}

	sums, err := l.xpAwardRepo.SumByUser(ctx, p.Start(), p.End())
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load xp sums from database: %v", err)
		return errorx.Unknown
	}

	for _, sum := range sums {
		err := l.redisClient.ZAdd(ctx, key, redis.Z{
			Member: sum.UserID,
			Score:  float64(sum.Total),
		})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot call ZAdd redis: %v", err)
			return errorx.Unknown
		}
	}

	return nil
}
