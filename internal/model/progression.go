package model

import "time"

// LogActivityRequest is the single entry point payload: one typed activity
// completion from anywhere in the product (workout logger, meal logger,
// water tracker, analysis flow).
type LogActivityRequest struct {
	// EventID is the caller's idempotency key. When set, re-sending the
	// same id returns a duplicate no-op instead of awarding XP again.
	EventID string `json:"event_id"`

	Domain       string    `json:"domain"`
	XPAmount     int64     `json:"xp_amount"`
	ActivityDate time.Time `json:"activity_date"`

	// TotalCount is the caller's cumulative counter in this domain, used by
	// count-shaped challenge targets.
	TotalCount int `json:"total_count"`

	// ActiveDays are the distinct calendar days with activity in this
	// domain, used by daily-shaped challenge targets.
	ActiveDays []time.Time `json:"active_days"`
}

type LogActivityResponse struct {
	XPAwarded           int64    `json:"xp_awarded"`
	Level               int      `json:"level"`
	Tier                string   `json:"tier"`
	LevelUp             bool     `json:"level_up"`
	TierChange          bool     `json:"tier_change"`
	NewBadges           []string `json:"new_badges"`
	CompletedChallenges []string `json:"completed_challenges"`

	// Duplicate reports that the event id was seen before and nothing was
	// awarded by this call.
	Duplicate bool `json:"duplicate,omitempty"`
}

type GetUserLevelRequest struct{}

type GetUserLevelResponse struct {
	Level         int     `json:"level"`
	Tier          string  `json:"tier"`
	CurrentXP     int64   `json:"current_xp"`
	TotalXP       int64   `json:"total_xp"`
	XPToNextLevel int64   `json:"xp_to_next_level"`
	Progress      float64 `json:"progress"`
}
