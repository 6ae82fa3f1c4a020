package query

import (
	"strings"

	"tableflip.dev/agenda/pkg/event"
)

// Filter narrows a view. The zero value matches everything.
type Filter struct {
	// Search keeps events whose title or description contains the string,
	// case-insensitively. Empty matches everything.
	Search string

	// Priority keeps events of exactly this priority. The event.All
	// sentinel (or empty) disables the check.
	Priority event.Priority
}

// Apply runs the search filter, then the priority filter, preserving order.
func (f Filter) Apply(events []*event.Event) []*event.Event {
	kept := make([]*event.Event, 0, len(events))
	needle := strings.ToLower(strings.TrimSpace(f.Search))
	for _, e := range events {
		if needle != "" &&
			!strings.Contains(strings.ToLower(e.Title), needle) &&
			!strings.Contains(strings.ToLower(e.Description), needle) {
			continue
		}
		if f.Priority != "" && f.Priority != event.All && e.Priority != f.Priority {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

// Partition splits events into upcoming (not completed) and completed
// subsets, each preserving the order of the input.
func Partition(events []*event.Event) (upcoming, completed []*event.Event) {
	for _, e := range events {
		if e.Completed {
			completed = append(completed, e)
		} else {
			upcoming = append(upcoming, e)
		}
	}
	return upcoming, completed
}
