package event

import (
	"fmt"
	"strings"
)

// New builds an Event with the given title scheduled on date at clock.
// The caller is expected to validate and assign an ID before storing it.
func New(title, date, clock string) *Event {
	return &Event{
		Title:    strings.TrimSpace(title),
		Date:     date,
		Time:     clock,
		Priority: Medium,
	}
}

// Event is a single scheduled item in the session.
//
// Date is a calendar date in "2006-01-02" form, Time a 24h clock time in
// "15:04" form. Together they name the instant the event happens. Completed
// is the persisted done-flag; whether the event is still in the future is a
// separate, render-time question (see Upcoming).
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Time        string   `json:"time,omitempty"`
	Description string   `json:"description,omitempty"`
	Priority    Priority `json:"priority,omitempty"`
	Completed   bool     `json:"completed,omitempty"`
}

// Row returns the table cells for list output.
func (e *Event) Row() (string, string, string, string) {
	return e.When(), e.Priority.String(), e.Title, e.Description
}

// When formats the date/time pair for display.
func (e *Event) When() string {
	if e.Time == "" {
		return e.Date
	}
	return fmt.Sprintf("%s %s", e.Date, e.Time)
}

func (e *Event) String() string {
	mark := "○"
	if e.Completed {
		mark = "✘"
	}
	return fmt.Sprintf("%s %s  %s", mark, e.When(), e.Title)
}

// Clone returns a copy so derived views never alias store state.
func (e *Event) Clone() *Event {
	if e == nil {
		return nil
	}
	c := *e
	return &c
}
