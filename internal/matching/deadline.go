package matching

import (
	"math"
	"time"
)

type DeadlineStatus string

const (
	DeadlineClosed   DeadlineStatus = "closed"
	DeadlineDueToday DeadlineStatus = "due_today"
	DeadlineUpcoming DeadlineStatus = "upcoming"
)

// Countdown carries the whole-day distance to a deadline. DaysLeft is
// meaningful only for DeadlineUpcoming.
type Countdown struct {
	Status   DeadlineStatus
	DaysLeft int
}

// DaysUntil compares calendar dates, not elapsed hours: both instants
// are truncated to midnight in now's location, so a deadline at 23:59
// and one at 00:01 of the same day both classify as due today.
func DaysUntil(deadline, now time.Time) Countdown {
	nowDay := truncateToDay(now)
	deadlineDay := truncateToDay(deadline.In(now.Location()))

	// Rounding absorbs DST transitions where a day is not 24h.
	diffDays := int(math.Round(deadlineDay.Sub(nowDay).Hours() / 24))

	switch {
	case diffDays < 0:
		return Countdown{Status: DeadlineClosed}
	case diffDays == 0:
		return Countdown{Status: DeadlineDueToday}
	default:
		return Countdown{Status: DeadlineUpcoming, DaysLeft: diffDays}
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
