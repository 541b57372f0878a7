// Package xp holds the level curve: pure functions mapping lifetime XP to
// level and tier.
//
// The curve is the stepped quadratic ForLevel(n) = 50n^2 + 50n, the XP needed
// to advance from level n to n+1 (100 for level 1, 300 for level 2, 600 for
// level 3, ...). It is strictly increasing in n, so a lifetime total uniquely
// determines a level and the mapping is monotonic.
package xp

import "github.com/wellnest-app/backend/internal/entity"

type tierThreshold struct {
	level int
	tier  entity.Tier
}

// Ordered by level ascending. TierForLevel picks the last entry whose level
// threshold has been reached.
var tierTable = []tierThreshold{
	{level: 1, tier: entity.TierBronze},
	{level: 10, tier: entity.TierSilver},
	{level: 25, tier: entity.TierGold},
	{level: 50, tier: entity.TierPlatinum},
	{level: 80, tier: entity.TierDiamond},
}

// Info bundles everything a caller needs to render a level widget.
type Info struct {
	Level         int
	CurrentXP     int64
	XPToNextLevel int64
	Tier          entity.Tier
	Progress      float64
}

// ForLevel returns the XP required to advance from level n to n+1.
func ForLevel(n int) int64 {
	if n < 1 {
		return 0
	}

	level := int64(n)
	return 50*level*level + 50*level
}

// TotalForLevel returns the lifetime XP at which level n begins.
func TotalForLevel(n int) int64 {
	var total int64
	for level := 1; level < n; level++ {
		total += ForLevel(level)
	}

	return total
}

// LevelFromTotal returns the largest level whose starting total does not
// exceed xp, along with the XP accumulated within that level. Negative input
// is treated as zero.
func LevelFromTotal(xp int64) (level int, currentXP int64) {
	if xp < 0 {
		xp = 0
	}

	level = 1
	remaining := xp
	for remaining >= ForLevel(level) {
		remaining -= ForLevel(level)
		level++
	}

	return level, remaining
}

func TierForLevel(n int) entity.Tier {
	tier := tierTable[0].tier
	for _, t := range tierTable {
		if n < t.level {
			break
		}
		tier = t.tier
	}

	return tier
}

func InfoFromTotal(xp int64) Info {
	level, currentXP := LevelFromTotal(xp)
	toNext := ForLevel(level)

	return Info{
		Level:         level,
		CurrentXP:     currentXP,
		XPToNextLevel: toNext - currentXP,
		Tier:          TierForLevel(level),
		Progress:      float64(currentXP) / float64(toNext),
	}
}
