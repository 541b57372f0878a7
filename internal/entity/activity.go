package entity

import (
	"time"

	"github.com/wellnest-app/backend/pkg/enum"
)

// ActivityDomain tags which part of the product produced an activity event.
type ActivityDomain string

var (
	DomainWorkout   = enum.New(ActivityDomain("workout"))
	DomainNutrition = enum.New(ActivityDomain("nutrition"))
	DomainHydration = enum.New(ActivityDomain("hydration"))
	DomainAnalysis  = enum.New(ActivityDomain("analysis"))
)

// ActivityEvent records one processed event per caller-supplied id. The
// composite primary key is the storage-level constraint behind event replay
// deduplication: re-sending an id conflicts and the whole pipeline is
// skipped for that event.
type ActivityEvent struct {
	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	EventID string `gorm:"primaryKey"`

	Domain    ActivityDomain
	CreatedAt time.Time
}
