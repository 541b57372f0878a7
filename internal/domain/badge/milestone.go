package badge

// Milestones are the streak lengths that award a one-time badge. Ordered
// ascending.
var Milestones = []int{7, 14, 30, 60, 100}

// StreakMilestones returns the milestone thresholds crossed by a streak
// moving from previous to current, i.e. every threshold in (previous,
// current]. It is pure: replaying the same transition yields the same set,
// which keeps badge awarding idempotent under retries.
func StreakMilestones(previous, current int) []int {
	var crossed []int
	for _, m := range Milestones {
		if previous < m && m <= current {
			crossed = append(crossed, m)
		}
	}

	return crossed
}

// DaysToNextMilestone returns how many more consecutive days are needed to
// reach the next milestone. It reports ok=false when the streak is already
// past the last milestone.
func DaysToNextMilestone(streak int) (days int, ok bool) {
	for _, m := range Milestones {
		if streak < m {
			return m - streak, true
		}
	}

	return 0, false
}

// LevelMilestones are the levels that award a one-time badge. They match the
// tier boundaries above bronze.
var LevelMilestones = []int{10, 25, 50, 80}

// LevelsCrossed returns the level milestones in (previous, current].
func LevelsCrossed(previous, current int) []int {
	var crossed []int
	for _, m := range LevelMilestones {
		if previous < m && m <= current {
			crossed = append(crossed, m)
		}
	}

	return crossed
}
