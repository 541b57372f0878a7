package entity

import "time"

// UserBadge records a single badge award. The composite primary key is the
// storage-level uniqueness constraint that makes awarding idempotent: a
// second insert for the same (user, badge) pair conflicts and is dropped.
type UserBadge struct {
	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	BadgeCode string `gorm:"primaryKey"`
	Badge     Badge  `gorm:"foreignKey:BadgeCode"`

	AwardedAt time.Time
}
