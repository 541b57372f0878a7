package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wellnest-app/backend/internal/domain/badge"
	"github.com/wellnest-app/backend/internal/domain/challenge"
	"github.com/wellnest-app/backend/internal/domain/leaderboard"
	"github.com/wellnest-app/backend/internal/domain/streak"
	"github.com/wellnest-app/backend/internal/domain/xp"
	"github.com/wellnest-app/backend/internal/entity"
	"github.com/wellnest-app/backend/internal/model"
	"github.com/wellnest-app/backend/internal/repository"
	"github.com/wellnest-app/backend/pkg/enum"
	"github.com/wellnest-app/backend/pkg/errorx"
	"github.com/wellnest-app/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// ProgressionDomain is the single entry point that turns raw activity events
// into XP, streaks, badges, and challenge completions. Each step commits
// independently and is idempotent on its own, so upstream at-least-once
// delivery never produces duplicate rewards.
type ProgressionDomain interface {
	LogActivity(ctx context.Context, req *model.LogActivityRequest) (*model.LogActivityResponse, error)
	GetUserLevel(ctx context.Context, req *model.GetUserLevelRequest) (*model.GetUserLevelResponse, error)
}

type progressionDomain struct {
	activityEventRepo repository.ActivityEventRepository
	userLevelRepo     repository.UserLevelRepository
	xpAwardRepo       repository.XPAwardRepository
	streakTracker     *streak.Tracker
	badgeManager      *badge.Manager
	challengeManager  *challenge.Manager
	leaderboard       leaderboard.Leaderboard
}

func NewProgressionDomain(
	activityEventRepo repository.ActivityEventRepository,
	userLevelRepo repository.UserLevelRepository,
	xpAwardRepo repository.XPAwardRepository,
	streakTracker *streak.Tracker,
	badgeManager *badge.Manager,
	challengeManager *challenge.Manager,
	leaderboard leaderboard.Leaderboard,
) *progressionDomain {
	return &progressionDomain{
		activityEventRepo: activityEventRepo,
		userLevelRepo:     userLevelRepo,
		xpAwardRepo:       xpAwardRepo,
		streakTracker:     streakTracker,
		badgeManager:      badgeManager,
		challengeManager:  challengeManager,
		leaderboard:       leaderboard,
	}
}

func (d *progressionDomain) LogActivity(
	ctx context.Context, req *model.LogActivityRequest,
) (*model.LogActivityResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "Not authenticated")
	}

	domain, err := enum.ToEnum[entity.ActivityDomain](req.Domain)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid activity domain %s", req.Domain)
	}

	if req.XPAmount < 0 {
		return nil, errorx.New(errorx.BadRequest, "XP amount must not be negative")
	}

	if req.ActivityDate.IsZero() {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty activity date")
	}

	// Step 0: claim the event id. The insert conflicts for a replayed or
	// concurrently redelivered id, and the loser skips the whole pipeline.
	// Callers without an id fall back to at-least-once delivery.
	if req.EventID != "" {
		created, err := d.activityEventRepo.Create(ctx, &entity.ActivityEvent{
			UserID:  userID,
			EventID: req.EventID,
			Domain:  domain,
		})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot record activity event: %v", err)
			return nil, errorx.Unknown
		}

		if !created {
			return d.duplicateResponse(ctx, userID)
		}
	}

	// Step 1: award the event's XP. The increment is a single atomic
	// statement; level-up detection compares the totals before and after
	// this event's own contribution, which stays correct when another event
	// lands in between.
	startTotal, total, err := d.awardXP(ctx, userID, domain, req.XPAmount)
	if err != nil {
		return nil, err
	}

	// Step 2: advance the streak and award crossed milestone badges.
	transition, err := d.streakTracker.Track(ctx, userID, domain, req.ActivityDate)
	if err != nil {
		return nil, err
	}

	newBadges, err := d.awardMilestoneBadges(ctx, userID, domain, transition)
	if err != nil {
		return nil, err
	}

	if domain == entity.DomainAnalysis {
		awarded, err := d.badgeManager.Award(ctx, userID, "first-analysis")
		if err != nil {
			return nil, err
		}

		if awarded {
			newBadges = append(newBadges, "first-analysis")
		}
	}

	// Step 3: refresh every active challenge in this domain and settle
	// completions.
	completed, rewardBadges, rewardXP, err := d.updateChallenges(ctx, userID, domain, req, transition)
	if err != nil {
		return nil, err
	}

	newBadges = append(newBadges, rewardBadges...)

	if rewardXP > 0 {
		_, total, err = d.awardXP(ctx, userID, domain, rewardXP)
		if err != nil {
			return nil, err
		}
	}

	startInfo := xp.InfoFromTotal(startTotal)
	finalInfo := xp.InfoFromTotal(total)

	// Level milestone badges cover the whole span this event moved the user
	// through, event XP and challenge rewards alike.
	for _, milestone := range badge.LevelsCrossed(startInfo.Level, finalInfo.Level) {
		awarded, err := d.badgeManager.Award(ctx, userID, badge.LevelBadgeCode(milestone))
		if err != nil {
			return nil, err
		}

		if awarded {
			newBadges = append(newBadges, badge.LevelBadgeCode(milestone))
		}
	}

	slices.Sort(newBadges)

	return &model.LogActivityResponse{
		XPAwarded:           req.XPAmount + rewardXP,
		Level:               finalInfo.Level,
		Tier:                string(finalInfo.Tier),
		LevelUp:             finalInfo.Level > startInfo.Level,
		TierChange:          finalInfo.Tier != startInfo.Tier,
		NewBadges:           newBadges,
		CompletedChallenges: completed,
	}, nil
}

// duplicateResponse reports a replayed event as a no-op carrying the user's
// current standing.
func (d *progressionDomain) duplicateResponse(
	ctx context.Context, userID string,
) (*model.LogActivityResponse, error) {
	total := int64(0)
	row, err := d.userLevelRepo.Get(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get user level: %v", err)
		return nil, errorx.Unknown
	}

	if err == nil {
		total = row.TotalXP
	}

	info := xp.InfoFromTotal(total)
	return &model.LogActivityResponse{
		Level:     info.Level,
		Tier:      string(info.Tier),
		Duplicate: true,
	}, nil
}

// awardXP increments the user's lifetime XP and syncs the derived level
// fields. It returns the totals before and after this award.
func (d *progressionDomain) awardXP(
	ctx context.Context, userID string, domain entity.ActivityDomain, amount int64,
) (before, after int64, err error) {
	if err := d.userLevelRepo.EnsureRow(ctx, userID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot ensure user level row: %v", err)
		return 0, 0, errorx.Unknown
	}

	if err := d.userLevelRepo.AddXP(ctx, userID, amount); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot add xp: %v", err)
		return 0, 0, errorx.Unknown
	}

	row, err := d.userLevelRepo.Get(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user level: %v", err)
		return 0, 0, errorx.Unknown
	}

	info := xp.InfoFromTotal(row.TotalXP)
	synced, err := d.userLevelRepo.SyncDerived(
		ctx, userID, row.TotalXP, info.Level, info.CurrentXP, info.Tier)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot sync derived level fields: %v", err)
		return 0, 0, errorx.Unknown
	}

	if !synced {
		// Another award moved the total first; that award syncs the fresher
		// value.
		xcontext.Logger(ctx).Debugf("Skip syncing stale level fields of user %s", userID)
	}

	err = d.xpAwardRepo.Create(ctx, &entity.XPAward{
		Base:   entity.Base{ID: uuid.NewString()},
		UserID: userID,
		Domain: domain,
		Amount: amount,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot record xp award: %v", err)
		return 0, 0, errorx.Unknown
	}

	// The leaderboard is a denormalized view; losing one bump only delays
	// the ranking until the next rebuild.
	if err := d.leaderboard.ChangeXPLeaderboard(ctx, amount, time.Now(), userID); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot update leaderboard: %v", err)
	}

	return row.TotalXP - amount, row.TotalXP, nil
}

func (d *progressionDomain) awardMilestoneBadges(
	ctx context.Context, userID string, domain entity.ActivityDomain, transition streak.Transition,
) ([]string, error) {
	var newBadges []string
	for _, milestone := range badge.StreakMilestones(transition.Previous, transition.Current) {
		code := badge.MilestoneBadgeCode(domain, milestone)
		if _, ok := d.badgeManager.Catalog().Get(code); !ok {
			continue
		}

		awarded, err := d.badgeManager.Award(ctx, userID, code)
		if err != nil {
			return nil, err
		}

		if awarded {
			newBadges = append(newBadges, code)
		}
	}

	return newBadges, nil
}

func (d *progressionDomain) updateChallenges(
	ctx context.Context,
	userID string,
	domain entity.ActivityDomain,
	req *model.LogActivityRequest,
	transition streak.Transition,
) (completed []string, newBadges []string, rewardXP int64, err error) {
	rows, err := d.challengeManager.ActiveForDomain(ctx, userID, domain)
	if err != nil {
		return nil, nil, 0, err
	}

	snapshot := challenge.Snapshot{
		CurrentStreak: transition.Current,
		TotalCount:    req.TotalCount,
		ActiveDays:    req.ActiveDays,
		EventDate:     req.ActivityDate,
	}

	for _, row := range rows {
		_, completedNow, err := d.challengeManager.UpdateProgress(ctx, row.ID, snapshot)
		if err != nil {
			var errx errorx.Error
			if errors.As(err, &errx) && errx.Code == errorx.InvalidState {
				// The row went terminal between our listing and this write,
				// e.g. the expiry sweep or a concurrent event won. Expected.
				continue
			}

			return nil, nil, 0, err
		}

		if !completedNow {
			continue
		}

		completed = append(completed, row.ChallengeCode)

		template, ok := d.challengeManager.Registry().Get(row.ChallengeCode)
		if !ok {
			continue
		}

		rewardXP += template.XPReward

		if template.AwardsBadge {
			code := badge.ChallengeBadgeCode(row.ChallengeCode)
			awarded, err := d.badgeManager.Award(ctx, userID, code)
			if err != nil {
				return nil, nil, 0, err
			}

			if awarded {
				newBadges = append(newBadges, code)
			}
		}
	}

	return completed, newBadges, rewardXP, nil
}

func (d *progressionDomain) GetUserLevel(
	ctx context.Context, req *model.GetUserLevelRequest,
) (*model.GetUserLevelResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "Not authenticated")
	}

	total := int64(0)
	row, err := d.userLevelRepo.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get user level: %v", err)
			return nil, errorx.Unknown
		}
	} else {
		total = row.TotalXP
	}

	info := xp.InfoFromTotal(total)
	return &model.GetUserLevelResponse{
		Level:         info.Level,
		Tier:          string(info.Tier),
		CurrentXP:     info.CurrentXP,
		TotalXP:       total,
		XPToNextLevel: info.XPToNextLevel,
		Progress:      info.Progress,
	}, nil
}
