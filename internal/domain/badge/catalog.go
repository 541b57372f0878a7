package badge

import (
	"fmt"

	"github.com/wellnest-app/backend/internal/entity"
)

// Catalog is the process-wide immutable set of badge definitions. It is built
// once at startup; runtime code only reads it.
type Catalog map[string]entity.Badge

func MilestoneBadgeCode(domain entity.ActivityDomain, days int) string {
	return fmt.Sprintf("%s-streak-%d", domain, days)
}

func ChallengeBadgeCode(challengeCode string) string {
	return fmt.Sprintf("challenge-%s", challengeCode)
}

func LevelBadgeCode(level int) string {
	return fmt.Sprintf("level-%d", level)
}

var milestoneRarities = map[int]entity.BadgeRarity{
	7:   entity.BadgeRarityCommon,
	14:  entity.BadgeRarityUncommon,
	30:  entity.BadgeRarityRare,
	60:  entity.BadgeRarityEpic,
	100: entity.BadgeRarityLegendary,
}

func NewCatalog() Catalog {
	catalog := Catalog{}

	for _, domain := range []entity.ActivityDomain{
		entity.DomainWorkout, entity.DomainNutrition, entity.DomainHydration,
	} {
		for _, days := range Milestones {
			code := MilestoneBadgeCode(domain, days)
			catalog[code] = entity.Badge{
				Code:        code,
				Category:    entity.BadgeCategoryStreak,
				Rarity:      milestoneRarities[days],
				Title:       fmt.Sprintf("%d-day %s streak", days, domain),
				Description: fmt.Sprintf("Logged %s activity %d days in a row.", domain, days),
				Requirement: entity.Map{"streak_domain": string(domain), "streak_days": days},
			}
		}
	}

	levelRarities := map[int]entity.BadgeRarity{
		10: entity.BadgeRarityUncommon,
		25: entity.BadgeRarityRare,
		50: entity.BadgeRarityEpic,
		80: entity.BadgeRarityLegendary,
	}
	for _, level := range LevelMilestones {
		code := LevelBadgeCode(level)
		catalog[code] = entity.Badge{
			Code:        code,
			Category:    entity.BadgeCategoryLevel,
			Rarity:      levelRarities[level],
			Title:       fmt.Sprintf("Level %d", level),
			Description: fmt.Sprintf("Reached level %d.", level),
			Requirement: entity.Map{"level": level},
		}
	}

	catalog["first-analysis"] = entity.Badge{
		Code:        "first-analysis",
		Category:    entity.BadgeCategoryAnalysis,
		Rarity:      entity.BadgeRarityCommon,
		Title:       "First analysis",
		Description: "Completed your first wellness analysis.",
		Requirement: entity.Map{"analysis_count": 1},
	}

	return catalog
}

// WithChallengeBadges extends the catalog with the reward badges of the given
// challenge templates. Called during startup wiring, before the catalog is
// shared.
func (c Catalog) WithChallengeBadges(challenges []ChallengeBadge) Catalog {
	for _, ch := range challenges {
		code := ChallengeBadgeCode(ch.ChallengeCode)
		c[code] = entity.Badge{
			Code:        code,
			Category:    entity.BadgeCategoryChallenge,
			Rarity:      ch.Rarity,
			Title:       ch.Title,
			Description: ch.Description,
			Requirement: entity.Map{"challenge_code": ch.ChallengeCode},
		}
	}

	return c
}

// ChallengeBadge describes the reward badge of a challenge template without
// importing the challenge package.
type ChallengeBadge struct {
	ChallengeCode string
	Rarity        entity.BadgeRarity
	Title         string
	Description   string
}

func (c Catalog) Get(code string) (entity.Badge, bool) {
	b, ok := c[code]
	return b, ok
}

func (c Catalog) All() []entity.Badge {
	all := make([]entity.Badge, 0, len(c))
	for _, b := range c {
		all = append(all, b)
	}

	return all
}
