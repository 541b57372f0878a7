package domain

import (
	"context"
	"time"

	"github.com/wellnest-app/backend/internal/domain/leaderboard"
	"github.com/wellnest-app/backend/internal/model"
	"github.com/wellnest-app/backend/internal/repository"
	"github.com/wellnest-app/backend/pkg/errorx"
	"github.com/wellnest-app/backend/pkg/xcontext"
)

type StatisticDomain interface {
	GetLeaderBoard(ctx context.Context, req *model.GetLeaderBoardRequest) (*model.GetLeaderBoardResponse, error)
}

type statisticDomain struct {
	leaderboard leaderboard.Leaderboard
	userRepo    repository.UserRepository
}

func NewStatisticDomain(
	leaderboard leaderboard.Leaderboard, userRepo repository.UserRepository,
) *statisticDomain {
	return &statisticDomain{leaderboard: leaderboard, userRepo: userRepo}
}

func (d *statisticDomain) GetLeaderBoard(
	ctx context.Context, req *model.GetLeaderBoardRequest,
) (*model.GetLeaderBoardResponse, error) {
	if req.Period == "" {
		req.Period = "total"
	}

	if req.Limit == 0 {
		req.Limit = 10
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if req.Limit > 50 {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit (50)")
	}

	results, err := d.leaderboard.GetLeaderBoard(ctx, req.Period, time.Now(), req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	for i := range results {
		user, err := d.userRepo.GetByID(ctx, results[i].UserID)
		if err != nil {
			// A ranked id without a user row is stale data, not a failure.
			xcontext.Logger(ctx).Warnf("Cannot get ranked user %s: %v", results[i].UserID, err)
			continue
		}

		results[i].Name = user.Name
	}

	return &model.GetLeaderBoardResponse{Leaderboard: results}, nil
}
