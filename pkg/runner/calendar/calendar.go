package calendar

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
)

type Calendar struct {
	// On selects the day to inspect; nil means today.
	On *time.Time

	ShowID bool
	Store  *store.Store
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not show calendar, no store")
	}

	on := event.Today()
	if n.On != nil {
		on = event.Day(*n.On)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Calendar(on, n.Store.List()...)
	return nil
}
