// Package store owns the canonical event collection for one session.
//
// The store is the single writer; everything downstream (sorting, filtering,
// the calendar index, the UI) works on snapshots and recomputes from the
// current collection on every read.
package store

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/sample"
)

// Store holds the live events for a session, keyed by id, remembering
// insertion order so chronological ties sort deterministically.
type Store struct {
	mu     sync.RWMutex
	events map[string]*event.Event
	order  []string

	watchMu sync.Mutex
	watches []chan Change
}

// New returns an empty session store.
func New() *Store {
	return &Store{events: make(map[string]*event.Event)}
}

// Load builds a session store from config, seeding the sample events when
// the config asks for them. A nil cfg loads the default config, mirroring
// how callers construct every other session in this repo.
func Load(cfg *Config) (*Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	s := New()
	if cfg.Seed {
		for _, seed := range sample.Events() {
			e, err := s.Create(seed.Draft)
			if err != nil {
				return nil, err
			}
			if seed.Completed {
				if _, err := s.ToggleCompletion(e.ID); err != nil {
					return nil, err
				}
			}
		}
	}
	return s, nil
}

// Create validates the draft, assigns a fresh id, and inserts the event
// with completed unset. IDs are random, never clock-derived, so rapid
// successive creates cannot collide.
func (s *Store) Create(d event.Draft) (*event.Event, error) {
	e, err := normalize(d)
	if err != nil {
		return nil, err
	}
	e.ID = uuid.NewString()
	e.Completed = false

	s.mu.Lock()
	s.events[e.ID] = e
	s.order = append(s.order, e.ID)
	s.mu.Unlock()

	s.notify(Change{Type: ChangeCreated, ID: e.ID})
	return e.Clone(), nil
}

// Update replaces every field of the identified event except its id,
// including the completed flag carried on the draft.
func (s *Store) Update(id string, d event.Draft) (*event.Event, error) {
	e, err := normalize(d)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	prev, ok := s.events[id]
	if !ok {
		s.mu.Unlock()
		return nil, &NotFoundError{ID: id}
	}
	e.ID = prev.ID
	s.events[id] = e
	s.mu.Unlock()

	s.notify(Change{Type: ChangeUpdated, ID: id})
	return e.Clone(), nil
}

// Delete removes the event. Deleting an id that is already gone is a no-op,
// which keeps delete idempotent for stale views.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	_, ok := s.events[id]
	if ok {
		delete(s.events, id)
		for i, oid := range s.order {
			if oid == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
	s.mu.Unlock()

	if ok {
		s.notify(Change{Type: ChangeDeleted, ID: id})
	}
	return ok
}

// ToggleCompletion flips the completed flag on the identified event.
func (s *Store) ToggleCompletion(id string) (*event.Event, error) {
	s.mu.Lock()
	e, ok := s.events[id]
	if !ok {
		s.mu.Unlock()
		return nil, &NotFoundError{ID: id}
	}
	e.Completed = !e.Completed
	out := e.Clone()
	s.mu.Unlock()

	s.notify(Change{Type: ChangeToggled, ID: id})
	return out, nil
}

// Get returns a copy of the identified event.
func (s *Store) Get(id string) (*event.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.events[id]
	if !ok {
		return nil, false
	}
	return e.Clone(), true
}

// List returns a snapshot of the whole collection in insertion order.
// Callers may reorder or filter the slice freely.
func (s *Store) List() []*event.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]*event.Event, 0, len(s.order))
	for _, id := range s.order {
		if e, ok := s.events[id]; ok {
			all = append(all, e.Clone())
		}
	}
	return all
}

// Len reports how many events are live in the session.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

// normalize turns a draft into a well-formed event or explains which field
// blocks the commit.
func normalize(d event.Draft) (*event.Event, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return nil, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if _, err := event.ParseDate(strings.TrimSpace(d.Date)); err != nil {
		return nil, &ValidationError{Field: "date", Reason: "want " + event.LayoutDate}
	}
	clock := strings.TrimSpace(d.Time)
	if _, err := event.ParseClock(clock); err != nil {
		return nil, &ValidationError{Field: "time", Reason: "want " + event.LayoutClock}
	}
	p, err := event.ParsePriority(d.Priority)
	if err != nil {
		return nil, &ValidationError{Field: "priority", Reason: "one of low, medium, high"}
	}
	return &event.Event{
		Title:       title,
		Date:        strings.TrimSpace(d.Date),
		Time:        clock,
		Description: strings.TrimSpace(d.Description),
		Priority:    p,
		Completed:   d.Completed,
	}, nil
}
