package entity

// XPAward is the append-only history of XP grants. user_levels carries the
// aggregate; this table is the per-event source used to rebuild periodic
// leaderboards.
type XPAward struct {
	Base

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	Domain ActivityDomain
	Amount int64
}
