package domain

import (
	"context"
	"time"

	"github.com/wellnest-app/backend/internal/domain/badge"
	"github.com/wellnest-app/backend/internal/model"
	"github.com/wellnest-app/backend/pkg/errorx"
	"github.com/wellnest-app/backend/pkg/xcontext"
)

type BadgeDomain interface {
	GetMyBadges(ctx context.Context, req *model.GetMyBadgesRequest) (*model.GetMyBadgesResponse, error)
}

type badgeDomain struct {
	badgeManager *badge.Manager
}

func NewBadgeDomain(badgeManager *badge.Manager) *badgeDomain {
	return &badgeDomain{badgeManager: badgeManager}
}

func (d *badgeDomain) GetMyBadges(
	ctx context.Context, req *model.GetMyBadgesRequest,
) (*model.GetMyBadgesResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "Not authenticated")
	}

	rows, err := d.badgeManager.GetUserBadges(ctx, userID)
	if err != nil {
		return nil, err
	}

	catalog := d.badgeManager.Catalog()
	badges := []model.Badge{}
	for _, row := range rows {
		b := model.Badge{
			Code:      row.BadgeCode,
			AwardedAt: row.AwardedAt.Format(time.RFC3339),
		}

		if def, ok := catalog[row.BadgeCode]; ok {
			b.Category = string(def.Category)
			b.Rarity = string(def.Rarity)
			b.Title = def.Title
			b.Description = def.Description
		}

		badges = append(badges, b)
	}

	return &model.GetMyBadgesResponse{Badges: badges}, nil
}
