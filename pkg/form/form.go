// Package form manages the create/edit draft for one event at a time. The
// controller mutates only its in-memory draft; the store is touched exactly
// once, on a successful submit.
package form

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/store"
)

// State is the controller's position in its create/edit machine.
type State int

const (
	// StateClosed means no draft is held.
	StateClosed State = iota

	// StateCreate holds a draft with no bound identity.
	StateCreate

	// StateEdit holds a draft bound to an existing event id.
	StateEdit
)

func (s State) String() string {
	switch s {
	case StateCreate:
		return "create"
	case StateEdit:
		return "edit"
	default:
		return "closed"
	}
}

// Controller runs the form lifecycle against a session store.
type Controller struct {
	store *store.Store
	state State
	id    string
	draft event.Draft
}

// NewController returns a closed controller bound to the store.
func NewController(s *store.Store) *Controller {
	return &Controller{store: s}
}

// State reports where the controller is in its lifecycle.
func (c *Controller) State() State { return c.state }

// EditingID returns the bound event id while in edit state.
func (c *Controller) EditingID() string { return c.id }

// Draft returns the current in-memory draft.
func (c *Controller) Draft() event.Draft { return c.draft }

// OpenCreate starts a blank draft: today's date, medium priority, nothing
// else filled in.
func (c *Controller) OpenCreate() {
	c.state = StateCreate
	c.id = ""
	c.draft = event.Draft{
		Date:     event.FormatDate(event.Today()),
		Priority: event.Medium.String(),
	}
}

// OpenEdit starts a draft initialized from the event's current fields.
func (c *Controller) OpenEdit(e *event.Event) {
	c.state = StateEdit
	c.id = e.ID
	c.draft = event.DraftOf(e)
}

// Set updates one named draft field. Unknown fields are rejected; known
// fields always take the value, since validation happens on submit.
func (c *Controller) Set(name, value string) error {
	if c.state == StateClosed {
		return fmt.Errorf("form: not open")
	}
	switch strings.ToLower(name) {
	case "title":
		c.draft.Title = value
	case "date":
		c.draft.Date = value
	case "time":
		c.draft.Time = value
	case "description":
		c.draft.Description = value
	case "priority":
		c.draft.Priority = value
	case "completed":
		done, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("form: completed wants true or false: %w", err)
		}
		c.draft.Completed = done
	default:
		return fmt.Errorf("form: no field %q", name)
	}
	return nil
}

// SetDay sets the draft date from an already-structured calendar date.
func (c *Controller) SetDay(day time.Time) {
	c.draft.Date = event.FormatDate(day)
}

// Submit normalizes the draft date and commits: create in create state,
// update against the bound id in edit state. On success the form closes; on
// error the draft survives so the caller can correct and resubmit.
func (c *Controller) Submit() (*event.Event, error) {
	switch c.state {
	case StateCreate, StateEdit:
	default:
		return nil, fmt.Errorf("form: not open")
	}

	// Accept a boundary string in any state of whitespace; parse it into a
	// structured date and render it back so the committed value is always
	// the canonical form.
	if trimmed := strings.TrimSpace(c.draft.Date); trimmed != "" {
		if day, err := event.ParseDate(trimmed); err == nil {
			c.draft.Date = event.FormatDate(day)
		}
	}

	var (
		e   *event.Event
		err error
	)
	if c.state == StateEdit {
		e, err = c.store.Update(c.id, c.draft)
	} else {
		e, err = c.store.Create(c.draft)
	}
	if err != nil {
		return nil, err
	}
	c.close()
	return e, nil
}

// Cancel discards the draft unconditionally.
func (c *Controller) Cancel() {
	c.close()
}

func (c *Controller) close() {
	c.state = StateClosed
	c.id = ""
	c.draft = event.Draft{}
}
