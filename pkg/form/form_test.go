package form

import (
	"testing"
	"time"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/store"
)

func TestOpenCreateDefaults(t *testing.T) {
	c := NewController(store.New())
	c.OpenCreate()
	if c.State() != StateCreate {
		t.Fatalf("state = %v, want create", c.State())
	}
	d := c.Draft()
	if d.Date != event.FormatDate(event.Today()) {
		t.Fatalf("draft date = %q, want today", d.Date)
	}
	if d.Priority != "medium" || d.Title != "" || d.Completed {
		t.Fatalf("unexpected blank draft: %+v", d)
	}
}

func TestOpenEditInitializesFromEvent(t *testing.T) {
	s := store.New()
	e, err := s.Create(event.Draft{Title: "Team Meeting", Date: "2024-03-26", Time: "14:00", Priority: "high"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	c := NewController(s)
	c.OpenEdit(e)
	if c.State() != StateEdit || c.EditingID() != e.ID {
		t.Fatalf("expected edit state bound to %q", e.ID)
	}
	if d := c.Draft(); d.Title != "Team Meeting" || d.Priority != "high" {
		t.Fatalf("draft not initialized from event: %+v", d)
	}
}

func TestOpenEditFallsBackToMediumPriority(t *testing.T) {
	c := NewController(store.New())
	c.OpenEdit(&event.Event{ID: "x", Title: "untyped", Date: "2024-03-26", Time: "14:00"})
	if d := c.Draft(); d.Priority != "medium" {
		t.Fatalf("draft priority = %q, want medium fallback", d.Priority)
	}
}

func TestSetMutatesOnlyTheDraft(t *testing.T) {
	s := store.New()
	c := NewController(s)
	c.OpenCreate()
	for name, value := range map[string]string{
		"title":       "Team Meeting",
		"time":        "14:00",
		"description": "Weekly team sync-up",
		"priority":    "high",
	} {
		if err := c.Set(name, value); err != nil {
			t.Fatalf("set %s: %v", name, err)
		}
	}
	if s.Len() != 0 {
		t.Fatalf("field changes must not touch the store")
	}
	if err := c.Set("venue", "room 4"); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestSubmitCreates(t *testing.T) {
	s := store.New()
	c := NewController(s)
	c.OpenCreate()
	c.Set("title", "Team Meeting")
	c.Set("date", " 2024-03-26 ")
	c.Set("time", "14:00")

	e, err := c.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if e.Date != "2024-03-26" {
		t.Fatalf("date not normalized: %q", e.Date)
	}
	if c.State() != StateClosed {
		t.Fatalf("form should close on success")
	}
	if s.Len() != 1 {
		t.Fatalf("expected one stored event")
	}
}

func TestSubmitValidationKeepsFormOpen(t *testing.T) {
	s := store.New()
	c := NewController(s)
	c.OpenCreate()
	c.Set("time", "14:00")
	// no title

	if _, err := c.Submit(); !store.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if c.State() != StateCreate {
		t.Fatalf("form must stay open after a rejected submit")
	}
	if s.Len() != 0 {
		t.Fatalf("rejected submit must not mutate the store")
	}

	c.Set("title", "Team Meeting")
	if _, err := c.Submit(); err != nil {
		t.Fatalf("corrected submit: %v", err)
	}
}

func TestSubmitEditUpdatesInPlace(t *testing.T) {
	s := store.New()
	e, err := s.Create(event.Draft{Title: "Team Meeting", Date: "2024-03-26", Time: "14:00", Priority: "medium"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	c := NewController(s)
	c.OpenEdit(e)
	c.Set("time", "09:00")

	got, err := c.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got.ID != e.ID || got.Time != "09:00" {
		t.Fatalf("edit did not update in place: %+v", got)
	}
	if s.Len() != 1 {
		t.Fatalf("edit must not create a second event")
	}
}

func TestCancelDiscardsDraft(t *testing.T) {
	s := store.New()
	c := NewController(s)
	c.OpenCreate()
	c.Set("title", "Team Meeting")
	c.Cancel()
	if c.State() != StateClosed {
		t.Fatalf("cancel should close the form")
	}
	if s.Len() != 0 {
		t.Fatalf("cancel must not touch the store")
	}
	if d := c.Draft(); d.Title != "" {
		t.Fatalf("draft should be discarded, still have %+v", d)
	}
}

func TestSetDayUsesStructuredDate(t *testing.T) {
	c := NewController(store.New())
	c.OpenCreate()
	c.SetDay(time.Date(2024, time.March, 26, 0, 0, 0, 0, time.Local))
	if d := c.Draft(); d.Date != "2024-03-26" {
		t.Fatalf("draft date = %q, want 2024-03-26", d.Date)
	}
}
