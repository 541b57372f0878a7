package entity

import (
	"time"

	"github.com/wellnest-app/backend/pkg/enum"
)

type Tier string

var (
	TierBronze   = enum.New(Tier("bronze"))
	TierSilver   = enum.New(Tier("silver"))
	TierGold     = enum.New(Tier("gold"))
	TierPlatinum = enum.New(Tier("platinum"))
	TierDiamond  = enum.New(Tier("diamond"))
)

// UserLevel is the per-user XP aggregate. TotalXP only ever grows; Level,
// CurrentXP, and Tier are derived from TotalXP and synced after every award.
type UserLevel struct {
	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	Level     int
	CurrentXP int64
	TotalXP   int64
	Tier      Tier

	CreatedAt time.Time
	UpdatedAt time.Time
}
