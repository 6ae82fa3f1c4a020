package query

import (
	"sort"
	"time"

	"tableflip.dev/agenda/pkg/event"
)

// DatesWithEvents returns the distinct calendar days that hold at least one
// event, normalized to midnight and sorted ascending. A calendar widget
// uses this to mark days.
func DatesWithEvents(events []*event.Event) []time.Time {
	seen := make(map[time.Time]bool)
	days := make([]time.Time, 0, len(events))
	for _, e := range events {
		day := event.Day(e.Instant())
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// EventsOn returns the events on the given calendar day in chronological
// order. A zero day defaults to today rather than erroring.
func EventsOn(events []*event.Event, day time.Time) []*event.Event {
	if day.IsZero() {
		day = event.Today()
	}
	matched := make([]*event.Event, 0)
	for _, e := range SortChronological(events) {
		if e.SameDay(day) {
			matched = append(matched, e)
		}
	}
	return matched
}
