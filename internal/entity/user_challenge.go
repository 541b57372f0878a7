package entity

import (
	"database/sql"
	"time"

	"github.com/wellnest-app/backend/pkg/enum"
)

type UserChallengeStatus string

var (
	ChallengeActive    = enum.New(UserChallengeStatus("active"))
	ChallengeCompleted = enum.New(UserChallengeStatus("completed"))
	ChallengeAbandoned = enum.New(UserChallengeStatus("abandoned"))
	ChallengeFailed    = enum.New(UserChallengeStatus("failed"))
)

// IsTerminal reports whether the status is absorbing. Terminal rows accept no
// further progress writes.
func (s UserChallengeStatus) IsTerminal() bool {
	return s != ChallengeActive
}

// UserChallenge is one user's participation in a challenge template. Status
// moves one-way out of active; every mutation is guarded by a conditional
// update on the active status, so two racing writers cannot both win.
type UserChallenge struct {
	Base

	UserID string `gorm:"uniqueIndex:idx_user_challenges_active_participation"`
	User   User   `gorm:"foreignKey:UserID"`

	ChallengeCode string `gorm:"uniqueIndex:idx_user_challenges_active_participation"`

	// Active mirrors Status: true while the row is active, NULL once it
	// goes terminal. It exists only to give the unique index a third
	// column, so storage itself refuses a second active row per
	// (user, challenge) while terminal history accumulates freely, since
	// NULLs never collide in a unique index.
	Active *bool `gorm:"uniqueIndex:idx_user_challenges_active_participation"`

	// Domain is denormalized from the challenge template at join time so the
	// dispatcher can select active rows per domain in one query.
	Domain ActivityDomain

	Status   UserChallengeStatus
	Progress int

	JoinedAt    time.Time
	TargetEndAt sql.NullTime
	CompletedAt sql.NullTime
}
