package dateutil

import "time"

const day = 24 * time.Hour

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// TimeOfDay returns the time elapsed since midnight.
func TimeOfDay(t time.Time) time.Duration {
	return t.Sub(StartOfDay(t))
}

// MinutesSinceMidnight returns the fractional number of minutes since midnight.
func MinutesSinceMidnight(t time.Time) float64 {
	return TimeOfDay(t).Minutes()
}

// TimeUntilMidnight returns the time left until the start of the next day.
func TimeUntilMidnight(t time.Time) time.Duration {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location()).Sub(t)
}

// TimeUntil returns how long until the next occurrence of timeOfDay.
// When t is already at or past timeOfDay the next day's occurrence is used.
func TimeUntil(t time.Time, timeOfDay time.Duration) time.Duration {
	current := TimeOfDay(t)
	if current < timeOfDay {
		return timeOfDay - current
	}
	return timeOfDay + day - current
}

// DaysSince returns the number of calendar days between then and t, ignoring time of day.
func DaysSince(t, then time.Time) float64 {
	a := StartOfDay(t)
	b := StartOfDay(then.In(t.Location()))
	return a.Sub(b).Hours() / 24
}

// HoursSince returns the fractional hours elapsed from then to t.
func HoursSince(t, then time.Time) float64 {
	return t.Sub(then).Hours()
}

// MinutesSince returns the fractional minutes elapsed from then to t.
func MinutesSince(t, then time.Time) float64 {
	return t.Sub(then).Minutes()
}

// SecondsSince returns the fractional seconds elapsed from then to t.
func SecondsSince(t, then time.Time) float64 {
	return t.Sub(then).Seconds()
}

// DayOfWeekNDaysAgo returns the weekday n calendar days before t.
func DayOfWeekNDaysAgo(t time.Time, n int) time.Weekday {
	y, m, d := t.Date()
	return time.Date(y, m, d-n, 0, 0, 0, 0, t.Location()).Weekday()
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
