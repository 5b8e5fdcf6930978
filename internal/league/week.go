package league

import "time"

// WeekStart returns the most recent Monday 00:00:00 at or before now, in
// now's location. Competitive weeks are anchored to local Mondays.
func WeekStart(now time.Time) time.Time {
	daysBack := (int(now.Weekday()) + 6) % 7 // Monday = 0 days back
	day := now.AddDate(0, 0, -daysBack)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
}

// BoundaryDue reports whether a week rollover is pending: the stored
// week start is strictly before the current week's start. Idempotent —
// once a profile's week start has been advanced, repeated checks within
// the same week return false.
func BoundaryDue(now, storedWeekStart time.Time) bool {
	return storedWeekStart.Before(WeekStart(now))
}
