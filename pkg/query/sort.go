// Package query derives read-only views from a store snapshot: the
// chronological order, search/priority filters, the upcoming/completed
// partition, and the calendar index. Nothing here mutates its input.
package query

import (
	"sort"

	"tableflip.dev/agenda/pkg/event"
)

// SortChronological returns the events ordered soonest first by their
// composed date+time instant. Events sharing an instant order by priority,
// most important first; the sort is stable, so full ties keep their
// relative insertion order.
func SortChronological(events []*event.Event) []*event.Event {
	sorted := make([]*event.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Instant(), sorted[j].Instant()
		if !a.Equal(b) {
			return a.Before(b)
		}
		return sorted[i].Priority.Rank() < sorted[j].Priority.Rank()
	})
	return sorted
}
