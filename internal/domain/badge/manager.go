package badge

import (
	"context"
	"time"

	"github.com/wellnest-app/backend/internal/entity"
	"github.com/wellnest-app/backend/internal/repository"
	"github.com/wellnest-app/backend/pkg/errorx"
	"github.com/wellnest-app/backend/pkg/xcontext"
)

// Manager awards catalog badges to users. Deduplication is delegated to the
// storage layer: Award never checks-then-acts.
type Manager struct {
	// Written at initialization only, readonly afterwards.
	catalog Catalog

	userBadgeRepo repository.UserBadgeRepository
}

func NewManager(catalog Catalog, userBadgeRepo repository.UserBadgeRepository) *Manager {
	return &Manager{catalog: catalog, userBadgeRepo: userBadgeRepo}
}

func (m *Manager) Catalog() Catalog {
	return m.catalog
}

// Award gives the badge to the user. An already-held badge is not an error:
// the award reports awarded=false and the caller proceeds. Retries and
// concurrent calls therefore produce exactly one row.
func (m *Manager) Award(ctx context.Context, userID, code string) (awarded bool, err error) {
	if _, ok := m.catalog.Get(code); !ok {
		return false, errorx.New(errorx.NotFound, "Not found badge %s", code)
	}

	created, err := m.userBadgeRepo.Award(ctx, &entity.UserBadge{
		UserID:    userID,
		BadgeCode: code,
		AwardedAt: time.Now(),
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create user badge: %v", err)
		return false, errorx.Unknown
	}

	return created, nil
}

func (m *Manager) GetUserBadges(ctx context.Context, userID string) ([]entity.UserBadge, error) {
	badges, err := m.userBadgeRepo.GetByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user badges: %v", err)
		return nil, errorx.Unknown
	}

	return badges, nil
}

func (m *Manager) HasBadge(ctx context.Context, userID, code string) (bool, error) {
	has, err := m.userBadgeRepo.Has(ctx, userID, code)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot check user badge: %v", err)
		return false, errorx.Unknown
	}

	return has, nil
}
