package add

import (
	"context"
	"errors"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/form"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/query"
	"tableflip.dev/agenda/pkg/store"
)

type Add struct {
	Title       string
	Date        string
	Time        string
	Description string
	Priority    string

	ShowID bool
	Store  *store.Store
}

// Do runs the draft through the form controller so the CLI exercises the
// same commit path as the dashboard, then prints the day's schedule.
func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no store")
	}

	c := form.NewController(n.Store)
	c.OpenCreate()
	for name, value := range map[string]string{
		"title":       n.Title,
		"time":        n.Time,
		"description": n.Description,
		"priority":    n.Priority,
	} {
		if value == "" {
			continue
		}
		if err := c.Set(name, value); err != nil {
			return err
		}
	}
	if n.Date != "" {
		if err := c.Set("date", n.Date); err != nil {
			return err
		}
	}

	e, err := c.Submit()
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("Events on " + e.Date)
	pp.Events(query.EventsOn(n.Store.List(), event.Day(e.Instant()))...)
	return nil
}
