package challenge

import (
	"fmt"

	"github.com/wellnest-app/backend/internal/domain/badge"
	"github.com/wellnest-app/backend/internal/entity"
	"github.com/wellnest-app/backend/pkg/enum"
)

type Difficulty string

var (
	DifficultyEasy   = enum.New(Difficulty("easy"))
	DifficultyMedium = enum.New(Difficulty("medium"))
	DifficultyHard   = enum.New(Difficulty("hard"))
)

// Challenge is a template users can join. Templates are static configuration:
// the registry is built once at startup and readonly afterwards.
type Challenge struct {
	Code        string
	Domain      entity.ActivityDomain
	Difficulty  Difficulty
	Title       string
	Description string

	Target Target

	// DurationDays of zero means the challenge never expires.
	DurationDays int

	XPReward int64

	// AwardsBadge marks templates whose completion also awards the
	// challenge's reward badge.
	AwardsBadge bool
	BadgeRarity entity.BadgeRarity
}

type Registry struct {
	byCode map[string]Challenge
}

func NewRegistry(challenges ...Challenge) (*Registry, error) {
	r := &Registry{byCode: make(map[string]Challenge)}
	for _, ch := range challenges {
		if err := r.register(ch); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *Registry) register(ch Challenge) error {
	if ch.Code == "" || ch.Target == nil {
		return fmt.Errorf("invalid challenge definition %q", ch.Code)
	}

	if _, ok := r.byCode[ch.Code]; ok {
		return fmt.Errorf("duplicated challenge code %s", ch.Code)
	}

	r.byCode[ch.Code] = ch
	return nil
}

func (r *Registry) Get(code string) (Challenge, bool) {
	ch, ok := r.byCode[code]
	return ch, ok
}

func (r *Registry) All() []Challenge {
	all := make([]Challenge, 0, len(r.byCode))
	for _, ch := range r.byCode {
		all = append(all, ch)
	}

	return all
}

func (r *Registry) ByDomain(domain entity.ActivityDomain) []Challenge {
	var result []Challenge
	for _, ch := range r.byCode {
		if ch.Domain == domain {
			result = append(result, ch)
		}
	}

	return result
}

// ChallengeBadges lists the reward badges the badge catalog must carry for
// this registry.
func (r *Registry) ChallengeBadges() []badge.ChallengeBadge {
	var result []badge.ChallengeBadge
	for _, ch := range r.byCode {
		if !ch.AwardsBadge {
			continue
		}

		result = append(result, badge.ChallengeBadge{
			ChallengeCode: ch.Code,
			Rarity:        ch.BadgeRarity,
			Title:         ch.Title,
			Description:   ch.Description,
		})
	}

	return result
}

// Defaults returns the built-in wellness challenge templates.
func Defaults() []Challenge {
	return []Challenge{
		{
			Code:         "workout-week-streak",
			Domain:       entity.DomainWorkout,
			Difficulty:   DifficultyMedium,
			Title:        "One week strong",
			Description:  "Work out seven days in a row.",
			Target:       StreakTarget{Days: 7},
			DurationDays: 14,
			XPReward:     500,
			AwardsBadge:  true,
			BadgeRarity:  entity.BadgeRarityUncommon,
		},
		{
			Code:        "workout-thirty-sessions",
			Domain:      entity.DomainWorkout,
			Difficulty:  DifficultyHard,
			Title:       "Thirty sessions",
			Description: "Complete thirty workouts, at your own pace.",
			Target:      CountTarget{Count: 30},
			XPReward:    1000,
		},
		{
			Code:         "nutrition-twenty-days",
			Domain:       entity.DomainNutrition,
			Difficulty:   DifficultyMedium,
			Title:        "Mindful eater",
			Description:  "Log your meals on twenty days within a month.",
			Target:       DailyTarget{Count: 20, WindowDays: 30},
			DurationDays: 30,
			XPReward:     800,
			AwardsBadge:  true,
			BadgeRarity:  entity.BadgeRarityRare,
		},
		{
			Code:         "hydration-habit",
			Domain:       entity.DomainHydration,
			Difficulty:   DifficultyEasy,
			Title:        "Hydration habit",
			Description:  "Hit your water goal three days in a row and twenty-one times overall.",
			Target:       CombinedTarget{Subs: []Target{StreakTarget{Days: 3}, CountTarget{Count: 21}}},
			DurationDays: 60,
			XPReward:     300,
		},
		{
			Code:        "analysis-deep-dive",
			Domain:      entity.DomainAnalysis,
			Difficulty:  DifficultyEasy,
			Title:       "Know yourself",
			Description: "Finish five wellness analyses.",
			Target:      CountTarget{Count: 5},
			XPReward:    250,
		},
	}
}
