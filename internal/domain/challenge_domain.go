package domain

import (
	"context"
	"time"

	"github.com/wellnest-app/backend/internal/domain/challenge"
	"github.com/wellnest-app/backend/internal/entity"
	"github.com/wellnest-app/backend/internal/model"
	"github.com/wellnest-app/backend/internal/repository"
	"github.com/wellnest-app/backend/pkg/enum"
	"github.com/wellnest-app/backend/pkg/errorx"
	"github.com/wellnest-app/backend/pkg/xcontext"
)

type ChallengeDomain interface {
	Join(ctx context.Context, req *model.JoinChallengeRequest) (*model.JoinChallengeResponse, error)
	Abandon(ctx context.Context, req *model.AbandonChallengeRequest) (*model.AbandonChallengeResponse, error)
	GetList(ctx context.Context, req *model.GetListChallengeRequest) (*model.GetListChallengeResponse, error)
	GetMyChallenges(ctx context.Context, req *model.GetMyChallengesRequest) (*model.GetMyChallengesResponse, error)
}

type challengeDomain struct {
	challengeManager  *challenge.Manager
	userChallengeRepo repository.UserChallengeRepository
}

func NewChallengeDomain(
	challengeManager *challenge.Manager,
	userChallengeRepo repository.UserChallengeRepository,
) *challengeDomain {
	return &challengeDomain{
		challengeManager:  challengeManager,
		userChallengeRepo: userChallengeRepo,
	}
}

func (d *challengeDomain) Join(
	ctx context.Context, req *model.JoinChallengeRequest,
) (*model.JoinChallengeResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "Not authenticated")
	}

	row, err := d.challengeManager.Join(ctx, userID, req.ChallengeCode)
	if err != nil {
		return nil, err
	}

	resp := &model.JoinChallengeResponse{ID: row.ID}
	if row.TargetEndAt.Valid {
		resp.TargetEndAt = row.TargetEndAt.Time.Format(time.RFC3339)
	}

	return resp, nil
}

func (d *challengeDomain) Abandon(
	ctx context.Context, req *model.AbandonChallengeRequest,
) (*model.AbandonChallengeResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "Not authenticated")
	}

	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty id")
	}

	if err := d.challengeManager.Abandon(ctx, userID, req.ID); err != nil {
		return nil, err
	}

	return &model.AbandonChallengeResponse{}, nil
}

func (d *challengeDomain) GetList(
	ctx context.Context, req *model.GetListChallengeRequest,
) (*model.GetListChallengeResponse, error) {
	templates := d.challengeManager.Registry().All()
	if req.Domain != "" {
		domain, err := enum.ToEnum[entity.ActivityDomain](req.Domain)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid activity domain %s", req.Domain)
		}

		templates = d.challengeManager.Registry().ByDomain(domain)
	}

	challenges := []model.Challenge{}
	for _, t := range templates {
		challenges = append(challenges, model.Challenge{
			Code:         t.Code,
			Domain:       string(t.Domain),
			Difficulty:   string(t.Difficulty),
			Title:        t.Title,
			Description:  t.Description,
			XPReward:     t.XPReward,
			DurationDays: t.DurationDays,
		})
	}

	return &model.GetListChallengeResponse{Challenges: challenges}, nil
}

func (d *challengeDomain) GetMyChallenges(
	ctx context.Context, req *model.GetMyChallengesRequest,
) (*model.GetMyChallengesResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "Not authenticated")
	}

	status := entity.UserChallengeStatus("")
	if req.Status != "" {
		var err error
		status, err = enum.ToEnum[entity.UserChallengeStatus](req.Status)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
		}
	}

	rows, err := d.userChallengeRepo.GetListByUserID(ctx, userID, status)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user challenges: %v", err)
		return nil, errorx.Unknown
	}

	challenges := []model.UserChallenge{}
	for _, row := range rows {
		c := model.UserChallenge{
			ID:            row.ID,
			ChallengeCode: row.ChallengeCode,
			Domain:        string(row.Domain),
			Status:        string(row.Status),
			Progress:      row.Progress,
			JoinedAt:      row.JoinedAt.Format(time.RFC3339),
		}

		if row.TargetEndAt.Valid {
			c.TargetEndAt = row.TargetEndAt.Time.Format(time.RFC3339)
		}

		if row.CompletedAt.Valid {
			c.CompletedAt = row.CompletedAt.Time.Format(time.RFC3339)
		}

		challenges = append(challenges, c)
	}

	return &model.GetMyChallengesResponse{Challenges: challenges}, nil
}
