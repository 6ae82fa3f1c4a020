package complete

import (
	"context"
	"errors"

	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
)

type Complete struct {
	ID     string
	ShowID bool
	Store  *store.Store
}

func (n *Complete) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not complete, no store")
	}

	e, err := n.Store.ToggleCompletion(n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	if e.Completed {
		pp.Title("Completed")
	} else {
		pp.Title("Reopened")
	}
	pp.Events(e)
	return nil
}
