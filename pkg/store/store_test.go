package store

import (
	"testing"

	"tableflip.dev/agenda/pkg/event"
)

func draft(title, date, clock string) event.Draft {
	return event.Draft{Title: title, Date: date, Time: clock, Priority: "medium"}
}

func TestCreateAssignsDistinctIDs(t *testing.T) {
	s := New()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		e, err := s.Create(draft("Team Meeting", "2024-03-26", "14:00"))
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if e.ID == "" {
			t.Fatalf("create returned empty id")
		}
		if seen[e.ID] {
			t.Fatalf("duplicate id %q after %d creates", e.ID, i+1)
		}
		seen[e.ID] = true
	}
}

func TestCreateStartsUncompleted(t *testing.T) {
	s := New()
	d := draft("Team Meeting", "2024-03-26", "14:00")
	d.Completed = true
	e, err := s.Create(d)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if e.Completed {
		t.Fatalf("new events must start uncompleted")
	}
}

func TestCreateValidation(t *testing.T) {
	s := New()
	cases := []struct {
		name string
		d    event.Draft
	}{
		{"empty title", draft("   ", "2024-03-26", "14:00")},
		{"bad date", draft("x", "03/26/2024", "14:00")},
		{"bad time", draft("x", "2024-03-26", "2pm")},
		{"missing time", draft("x", "2024-03-26", "")},
		{"bad priority", event.Draft{Title: "x", Date: "2024-03-26", Time: "14:00", Priority: "urgent"}},
	}
	for _, c := range cases {
		if _, err := s.Create(c.d); !IsValidation(err) {
			t.Fatalf("%s: expected validation error, got %v", c.name, err)
		}
	}
	if s.Len() != 0 {
		t.Fatalf("rejected drafts must not mutate the store")
	}
}

func TestUpdateReplacesAllFieldsButID(t *testing.T) {
	s := New()
	e, err := s.Create(draft("Team Meeting", "2024-03-26", "14:00"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	d := event.Draft{
		Title:       "Client Presentation",
		Date:        "2024-03-28",
		Time:        "10:30",
		Description: "Q1 project review",
		Priority:    "high",
		Completed:   true,
	}
	got, err := s.Update(e.ID, d)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.ID != e.ID {
		t.Fatalf("update changed id: %q -> %q", e.ID, got.ID)
	}
	if got.Title != "Client Presentation" || got.Time != "10:30" || got.Priority != event.High || !got.Completed {
		t.Fatalf("update did not replace fields: %+v", got)
	}
}

func TestUpdateMissingIsNotFound(t *testing.T) {
	s := New()
	if _, err := s.Update("nope", draft("x", "2024-03-26", "14:00")); !IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := New()
	e, err := s.Create(draft("Team Meeting", "2024-03-26", "14:00"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !s.Delete(e.ID) {
		t.Fatalf("first delete should report removal")
	}
	if s.Delete(e.ID) {
		t.Fatalf("second delete should be a no-op")
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty store, have %d", s.Len())
	}
}

func TestToggleCompletion(t *testing.T) {
	s := New()
	e, err := s.Create(draft("Team Meeting", "2024-03-26", "14:00"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := s.ToggleCompletion(e.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !got.Completed {
		t.Fatalf("expected completed after toggle")
	}
	got, err = s.ToggleCompletion(e.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if got.Completed {
		t.Fatalf("expected uncompleted after second toggle")
	}
	if _, err := s.ToggleCompletion("nope"); !IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestListSnapshotsDoNotAliasStore(t *testing.T) {
	s := New()
	e, err := s.Create(draft("Team Meeting", "2024-03-26", "14:00"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	s.List()[0].Title = "mutated"
	got, ok := s.Get(e.ID)
	if !ok || got.Title != "Team Meeting" {
		t.Fatalf("snapshot mutation leaked into the store: %+v", got)
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	s := New()
	titles := []string{"a", "b", "c"}
	for _, title := range titles {
		if _, err := s.Create(draft(title, "2024-03-26", "14:00")); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	all := s.List()
	for i, title := range titles {
		if all[i].Title != title {
			t.Fatalf("insertion order lost: %v", all)
		}
	}
}

func TestLoadSeedsSampleSession(t *testing.T) {
	s, err := Load(&Config{Seed: true})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Len() != 4 {
		t.Fatalf("expected 4 seed events, have %d", s.Len())
	}
	completed := 0
	for _, e := range s.List() {
		if e.Completed {
			completed++
		}
	}
	if completed != 1 {
		t.Fatalf("expected exactly one completed seed, have %d", completed)
	}
}
