package dateutil

import "time"

// Day truncates t to its calendar day, keeping the original location. All
// streak and challenge comparisons work on calendar days, never on clock
// times.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of calendar days from "from" to "to". It is
// negative if "to" is before "from".
func DaysBetween(from, to time.Time) int {
	return int(Day(to).Sub(Day(from)) / (24 * time.Hour))
}

func IsSameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// IsNextDay reports whether b falls on the calendar day right after a.
func IsNextDay(a, b time.Time) bool {
	return DaysBetween(a, b) == 1
}
