package store

import (
	"context"
)

// ChangeType describes the nature of a store mutation notification.
type ChangeType int

const (
	// ChangeCreated indicates a new event entered the collection.
	ChangeCreated ChangeType = iota

	// ChangeUpdated indicates an existing event's fields were replaced.
	ChangeUpdated

	// ChangeDeleted indicates an event left the collection.
	ChangeDeleted

	// ChangeToggled indicates an event's completed flag flipped.
	ChangeToggled
)

// Change is emitted on every committed mutation so derived-view consumers
// know to recompute.
type Change struct {
	Type ChangeType
	ID   string
}

// Watch streams change notifications until ctx is cancelled. Callers should
// drain the returned channel; the channel is closed once ctx is done.
func (s *Store) Watch(ctx context.Context) <-chan Change {
	ch := make(chan Change, 64)

	s.watchMu.Lock()
	s.watches = append(s.watches, ch)
	s.watchMu.Unlock()

	go func() {
		<-ctx.Done()
		s.watchMu.Lock()
		for i, w := range s.watches {
			if w == ch {
				s.watches = append(s.watches[:i], s.watches[i+1:]...)
				break
			}
		}
		s.watchMu.Unlock()
		close(ch)
	}()

	return ch
}

func (s *Store) notify(c Change) {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()
	for _, w := range s.watches {
		select {
		case w <- c:
		default:
			// Drop notifications if the consumer is not ready; every view
			// recomputes from the full snapshot on refresh, so a missed
			// notification costs one redraw, never correctness.
		}
	}
}
