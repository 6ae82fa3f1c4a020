package event

import (
	"time"
)

const (
	// LayoutDate is the calendar-date form used at every boundary.
	LayoutDate = "2006-01-02"

	// LayoutClock is the 24h clock form used at every boundary.
	LayoutClock = "15:04"
)

// ParseDate parses a boundary date string.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(LayoutDate, s, time.Local)
}

// ParseClock parses a boundary clock string.
func ParseClock(s string) (time.Time, error) {
	return time.Parse(LayoutClock, s)
}

// FormatDate renders t as a boundary date string.
func FormatDate(t time.Time) string {
	return t.Format(LayoutDate)
}

// Today returns the current calendar date, truncated to midnight local time.
func Today() time.Time {
	return Day(time.Now())
}

// Day truncates t to its calendar date.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Instant composes the event's date and time into the single point in time
// it is scheduled for. A malformed or missing date falls back to today and a
// malformed or missing time to midnight, so comparing instants never has to
// deal with an invalid value.
func (e *Event) Instant() time.Time {
	day, err := ParseDate(e.Date)
	if err != nil {
		day = Today()
	}
	clock, err := ParseClock(e.Time)
	if err != nil {
		return day
	}
	return day.Add(time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute)
}

// SameDay reports whether the event falls on the given calendar date,
// irrespective of its clock time.
func (e *Event) SameDay(then time.Time) bool {
	day := e.Instant()
	return day.Day() == then.Day() &&
		day.Month() == then.Month() &&
		day.Year() == then.Year()
}

// Upcoming reports whether the event's instant is still ahead of now. This
// is a display signal and deliberately independent of Completed.
func (e *Event) Upcoming(now time.Time) bool {
	return e.Instant().After(now)
}
