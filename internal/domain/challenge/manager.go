package challenge

import (
	"context"
	"database/sql"
	"errors"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/wellnest-app/backend/internal/entity"
	"github.com/wellnest-app/backend/internal/repository"
	"github.com/wellnest-app/backend/pkg/errorx"
	"github.com/wellnest-app/backend/pkg/xcontext"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Manager owns the lifecycle of user challenge rows. All status transitions
// go through conditional updates guarded on the active status, so terminal
// rows are never written again.
type Manager struct {
	// Written at initialization only, readonly afterwards.
	registry *Registry

	userChallengeRepo repository.UserChallengeRepository
}

func NewManager(registry *Registry, userChallengeRepo repository.UserChallengeRepository) *Manager {
	return &Manager{registry: registry, userChallengeRepo: userChallengeRepo}
}

func (m *Manager) Registry() *Registry {
	return m.registry
}

// Join opts the user into a challenge template. Joining twice while the first
// participation is still active is rejected; rejoining after a terminal
// outcome starts a fresh row.
func (m *Manager) Join(ctx context.Context, userID, code string) (*entity.UserChallenge, error) {
	template, ok := m.registry.Get(code)
	if !ok {
		return nil, errorx.New(errorx.UnknownChallenge, "Not found challenge %s", code)
	}

	now := time.Now()
	active := true
	row := &entity.UserChallenge{
		Base:          entity.Base{ID: uuid.NewString()},
		UserID:        userID,
		ChallengeCode: code,
		Domain:        template.Domain,
		Status:        entity.ChallengeActive,
		Active:        &active,
		Progress:      0,
		JoinedAt:      now,
	}

	if template.DurationDays > 0 {
		row.TargetEndAt = sql.NullTime{
			Valid: true,
			Time:  now.AddDate(0, 0, template.DurationDays),
		}
	}

	// The insert itself decides the duplicate-join race: the unique index
	// over (user_id, challenge_code, active) admits at most one active row,
	// so whichever of two concurrent joins loses sees created=false here.
	created, err := m.userChallengeRepo.Create(ctx, row)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create user challenge: %v", err)
		return nil, errorx.Unknown
	}

	if !created {
		return nil, errorx.New(errorx.AlreadyJoined, "You have already joined this challenge")
	}

	return row, nil
}

// UpdateProgress recomputes the row's progress from the snapshot. When the
// target is reached, the row is completed in the same call, exactly once. A
// terminal row rejects the update with an invalid-state error rather than
// silently succeeding.
func (m *Manager) UpdateProgress(
	ctx context.Context, userChallengeID string, snapshot Snapshot,
) (row *entity.UserChallenge, completedNow bool, err error) {
	row, err = m.userChallengeRepo.GetByID(ctx, userChallengeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, errorx.New(errorx.NotFound, "Not found user challenge")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user challenge: %v", err)
		return nil, false, errorx.Unknown
	}

	if row.Status.IsTerminal() {
		return nil, false, errorx.New(errorx.InvalidState,
			"Challenge is already %s", row.Status)
	}

	template, ok := m.registry.Get(row.ChallengeCode)
	if !ok {
		xcontext.Logger(ctx).Errorf("User challenge %s references unknown template %s",
			row.ID, row.ChallengeCode)
		return nil, false, errorx.Unknown
	}

	snapshot.JoinedAt = row.JoinedAt
	progress := template.Target.Progress(snapshot)

	if progress >= 100 {
		completed, err := m.userChallengeRepo.Complete(ctx, row.ID, time.Now())
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot complete user challenge: %v", err)
			return nil, false, errorx.Unknown
		}

		if !completed {
			// Someone else moved the row out of active between our read and
			// this write. The winner already processed the completion.
			return nil, false, errorx.New(errorx.InvalidState, "Challenge is no longer active")
		}

		row.Status = entity.ChallengeCompleted
		row.Progress = 100
		return row, true, nil
	}

	updated, err := m.userChallengeRepo.UpdateProgress(ctx, row.ID, progress)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update challenge progress: %v", err)
		return nil, false, errorx.Unknown
	}

	if !updated {
		return nil, false, errorx.New(errorx.InvalidState, "Challenge is no longer active")
	}

	row.Progress = progress
	return row, false, nil
}

// ActiveForDomain lists the user's active rows the dispatcher must update
// for an event in the given domain.
func (m *Manager) ActiveForDomain(
	ctx context.Context, userID string, domain entity.ActivityDomain,
) ([]entity.UserChallenge, error) {
	rows, err := m.userChallengeRepo.GetActiveByDomain(ctx, userID, domain)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot list active challenges: %v", err)
		return nil, errorx.Unknown
	}

	return rows, nil
}

// Abandon is the user-initiated terminal transition.
func (m *Manager) Abandon(ctx context.Context, userID, userChallengeID string) error {
	row, err := m.userChallengeRepo.GetByID(ctx, userChallengeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorx.New(errorx.NotFound, "Not found user challenge")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user challenge: %v", err)
		return errorx.Unknown
	}

	if row.UserID != userID {
		return errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	terminated, err := m.userChallengeRepo.Terminate(ctx, row.ID, entity.ChallengeAbandoned)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot abandon user challenge: %v", err)
		return errorx.Unknown
	}

	if !terminated {
		return errorx.New(errorx.InvalidState, "Challenge is already %s", row.Status)
	}

	return nil
}

// ProcessExpired moves every active row whose deadline has passed to failed.
// It only ever takes rows out of the active status, so running it repeatedly
// or concurrently with live progress updates is safe: whichever write lands
// first wins and the guard blocks the rest.
func (m *Manager) ProcessExpired(ctx context.Context, now time.Time) (int, error) {
	expired, err := m.userChallengeRepo.GetExpired(ctx, now)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot list expired challenges: %v", err)
		return 0, errorx.Unknown
	}

	var failed int64
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(8)
	for _, row := range expired {
		row := row
		eg.Go(func() error {
			terminated, err := m.userChallengeRepo.Terminate(egCtx, row.ID, entity.ChallengeFailed)
			if err != nil {
				return err
			}

			if terminated {
				atomic.AddInt64(&failed, 1)
			}

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot fail expired challenges: %v", err)
		return int(atomic.LoadInt64(&failed)), errorx.Unknown
	}

	return int(atomic.LoadInt64(&failed)), nil
}
