package leaderboard

import (
	"fmt"
	"time"

	"github.com/wellnest-app/backend/pkg/dateutil"
)

// Period is one leaderboard window. Total has no bounds; week and month are
// calendar windows around a reference time.
type Period struct {
	name  string
	key   string
	start time.Time
	end   time.Time
}

func (p Period) Name() string     { return p.name }
func (p Period) Key() string      { return p.key }
func (p Period) Start() time.Time { return p.start }
func (p Period) End() time.Time   { return p.end }

func ToPeriod(name string, at time.Time) (Period, error) {
	switch name {
	case "week":
		year, week := at.ISOWeek()
		start := startOfISOWeek(at)
		return Period{
			name:  name,
			key:   fmt.Sprintf("week/%d/%d", week, year),
			start: start,
			end:   start.AddDate(0, 0, 7),
		}, nil

	case "month":
		start := time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, at.Location())
		return Period{
			name:  name,
			key:   fmt.Sprintf("month/%d/%d", at.Month(), at.Year()),
			start: start,
			end:   start.AddDate(0, 1, 0),
		}, nil

	case "total":
		return Period{name: name, key: "total"}, nil

	default:
		return Period{}, fmt.Errorf("leaderboard period must be week, month, or total, but got %s", name)
	}
}

func startOfISOWeek(t time.Time) time.Time {
	sinceMonday := (int(t.Weekday()) + 6) % 7
	return dateutil.Day(t).AddDate(0, 0, -sinceMonday)
}
