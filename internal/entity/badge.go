package entity

import "github.com/wellnest-app/backend/pkg/enum"

type BadgeCategory string

var (
	BadgeCategoryStreak    = enum.New(BadgeCategory("streak"))
	BadgeCategoryChallenge = enum.New(BadgeCategory("challenge"))
	BadgeCategoryLevel     = enum.New(BadgeCategory("level"))
	BadgeCategoryAnalysis  = enum.New(BadgeCategory("analysis"))
)

type BadgeRarity string

var (
	BadgeRarityCommon    = enum.New(BadgeRarity("common"))
	BadgeRarityUncommon  = enum.New(BadgeRarity("uncommon"))
	BadgeRarityRare      = enum.New(BadgeRarity("rare"))
	BadgeRarityEpic      = enum.New(BadgeRarity("epic"))
	BadgeRarityLegendary = enum.New(BadgeRarity("legendary"))
)

// Badge is a catalog definition. The catalog is immutable at runtime; rows
// are mirrored to the database at migration time for reporting joins, but
// lookups always go through the in-memory catalog.
type Badge struct {
	Code        string `gorm:"primaryKey"`
	Category    BadgeCategory
	Rarity      BadgeRarity
	Title       string
	Description string

	// Requirement describes the declarative predicate of this badge, e.g.
	// {"streak_domain": "workout", "streak_days": 7}.
	Requirement Map
}
