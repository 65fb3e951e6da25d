package renewal

import (
	"regexp"
	"strconv"
	"time"
)

const (
	ScheduleDaily   = "daily"
	ScheduleWeekly  = "weekly"
	ScheduleMonthly = "monthly"
)

// maxIntervalDays bounds every_<N>_days to a century.
const maxIntervalDays = 36500

var everyNDaysPattern = regexp.MustCompile(`^every_(\d+)_days$`)

// NextExecution returns the next run time for a schedule, or nil when the
// schedule is not recognised. The result is in UTC.
func NextExecution(schedule string, now time.Time) *time.Time {
	now = now.UTC()
	var next time.Time
	switch schedule {
	case ScheduleDaily:
		next = now.AddDate(0, 0, 1)
	case ScheduleWeekly:
		next = now.AddDate(0, 0, 7)
	case ScheduleMonthly:
		next = addMonth(now)
	default:
		m := everyNDaysPattern.FindStringSubmatch(schedule)
		if m == nil {
			return nil
		}
		days, err := strconv.Atoi(m[1])
		if err != nil || days < 1 || days > maxIntervalDays {
			return nil
		}
		next = now.AddDate(0, 0, days)
	}
	return &next
}

// addMonth moves t one calendar month ahead, clamping the day to the end of
// the target month (Jan 31 -> Feb 28/29).
func addMonth(t time.Time) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month+1, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// ValidSchedule reports whether the schedule produces a next execution time.
func ValidSchedule(schedule string) bool {
	return NextExecution(schedule, time.Now()) != nil
}
