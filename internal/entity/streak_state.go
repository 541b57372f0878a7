package entity

import "time"

// StreakState tracks consecutive-day activity per (user, domain). The
// LongestStreak never drops below CurrentStreak. LastActivityDate is a
// calendar day supplied by the caller, never inferred from server time.
type StreakState struct {
	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	Domain ActivityDomain `gorm:"primaryKey"`

	CurrentStreak    int
	LongestStreak    int
	LastActivityDate time.Time

	UpdatedAt time.Time
}
