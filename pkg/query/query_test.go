package query

import (
	"testing"

	"tableflip.dev/agenda/pkg/event"
)

// the scenario set from the dashboard: A(3-28 10:30 high),
// B(3-26 14:00 medium), C(4-05 18:00 high).
func scenario() (a, b, c *event.Event) {
	a = &event.Event{ID: "a", Title: "Client Presentation", Date: "2024-03-28", Time: "10:30", Priority: event.High}
	b = &event.Event{ID: "b", Title: "Team Meeting", Date: "2024-03-26", Time: "14:00", Description: "Weekly team sync-up", Priority: event.Medium}
	c = &event.Event{ID: "c", Title: "Project Deadline", Date: "2024-04-05", Time: "18:00", Priority: event.High}
	return a, b, c
}

func ids(events []*event.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}

func sameIDs(got []*event.Event, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i, e := range got {
		if e.ID != want[i] {
			return false
		}
	}
	return true
}

func TestSortChronologicalRegardlessOfInsertion(t *testing.T) {
	a, b, c := scenario()
	for _, in := range [][]*event.Event{
		{a, b, c},
		{c, b, a},
		{b, c, a},
	} {
		if got := SortChronological(in); !sameIDs(got, "b", "a", "c") {
			t.Fatalf("sorted = %v, want [b a c]", ids(got))
		}
	}
}

func TestSortIsStableOnIdenticalInstants(t *testing.T) {
	x := &event.Event{ID: "x", Title: "first", Date: "2024-03-26", Time: "14:00"}
	y := &event.Event{ID: "y", Title: "second", Date: "2024-03-26", Time: "14:00"}
	if got := SortChronological([]*event.Event{x, y}); !sameIDs(got, "x", "y") {
		t.Fatalf("tie order = %v, want insertion order [x y]", ids(got))
	}
}

func TestSortBreaksInstantTiesByPriority(t *testing.T) {
	lo := &event.Event{ID: "lo", Title: "errands", Date: "2024-03-26", Time: "14:00", Priority: event.Low}
	hi := &event.Event{ID: "hi", Title: "board review", Date: "2024-03-26", Time: "14:00", Priority: event.High}
	md := &event.Event{ID: "md", Title: "standup", Date: "2024-03-26", Time: "14:00", Priority: event.Medium}
	if got := SortChronological([]*event.Event{lo, hi, md}); !sameIDs(got, "hi", "md", "lo") {
		t.Fatalf("same-instant order = %v, want most important first [hi md lo]", ids(got))
	}
	// A later instant still loses to an earlier one regardless of priority.
	early := &event.Event{ID: "early", Title: "walk", Date: "2024-03-26", Time: "09:00", Priority: event.Low}
	if got := SortChronological([]*event.Event{hi, early}); !sameIDs(got, "early", "hi") {
		t.Fatalf("priority must only break exact instant ties, got %v", ids(got))
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	a, b, c := scenario()
	in := []*event.Event{c, a, b}
	SortChronological(in)
	if !sameIDs(in, "c", "a", "b") {
		t.Fatalf("input reordered: %v", ids(in))
	}
}

func TestFilterSearchMatchesTitleAndDescription(t *testing.T) {
	a, b, c := scenario()
	all := SortChronological([]*event.Event{a, b, c})

	if got := (Filter{Search: "TEAM"}).Apply(all); !sameIDs(got, "b") {
		t.Fatalf("title search = %v, want [b]", ids(got))
	}
	if got := (Filter{Search: "sync-up"}).Apply(all); !sameIDs(got, "b") {
		t.Fatalf("description search = %v, want [b]", ids(got))
	}
	if got := (Filter{Search: ""}).Apply(all); len(got) != 3 {
		t.Fatalf("empty search should match everything, got %v", ids(got))
	}
}

func TestFilterPriorityComposesWithSearch(t *testing.T) {
	a, b, c := scenario()
	all := SortChronological([]*event.Event{a, b, c})

	if got := (Filter{Priority: event.High}).Apply(all); !sameIDs(got, "a", "c") {
		t.Fatalf("high filter = %v, want [a c]", ids(got))
	}
	got := Filter{Search: "project", Priority: event.High}.Apply(all)
	if !sameIDs(got, "c") {
		t.Fatalf("composed filter = %v, want [c]", ids(got))
	}
}

func TestFilterAllSentinelIsPassThrough(t *testing.T) {
	a, b, c := scenario()
	all := SortChronological([]*event.Event{a, b, c})
	withAll := Filter{Priority: event.All}.Apply(all)
	without := Filter{}.Apply(all)
	if len(withAll) != len(without) || len(withAll) != 3 {
		t.Fatalf("all sentinel changed the result: %v vs %v", ids(withAll), ids(without))
	}
}

func TestPartitionIsCompleteAndExclusive(t *testing.T) {
	a, b, c := scenario()
	b.Completed = true
	all := SortChronological([]*event.Event{a, b, c})

	upcoming, completed := Partition(all)
	if len(upcoming)+len(completed) != len(all) {
		t.Fatalf("partition lost events: %d + %d != %d", len(upcoming), len(completed), len(all))
	}
	if !sameIDs(upcoming, "a", "c") || !sameIDs(completed, "b") {
		t.Fatalf("partition = %v / %v", ids(upcoming), ids(completed))
	}
}

func TestToggleMovesBetweenPartitionsNotInOrder(t *testing.T) {
	a, b, c := scenario()
	all := SortChronological([]*event.Event{a, b, c})

	upcoming, _ := Partition(all)
	if !sameIDs(upcoming, "b", "a", "c") {
		t.Fatalf("upcoming = %v", ids(upcoming))
	}

	a.Completed = true
	all = SortChronological([]*event.Event{a, b, c})
	if !sameIDs(all, "b", "a", "c") {
		t.Fatalf("completion changed chronological order: %v", ids(all))
	}
	upcoming, completed := Partition(all)
	if !sameIDs(upcoming, "b", "c") || !sameIDs(completed, "a") {
		t.Fatalf("partition after toggle = %v / %v", ids(upcoming), ids(completed))
	}
}

func TestEditedTimeKeepsOrderWhenStillEarliest(t *testing.T) {
	a, b, c := scenario()
	b.Time = "09:00"
	if got := SortChronological([]*event.Event{a, b, c}); !sameIDs(got, "b", "a", "c") {
		t.Fatalf("sorted after edit = %v, want [b a c]", ids(got))
	}
}
