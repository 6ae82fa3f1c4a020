package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/query"
	"tableflip.dev/agenda/pkg/store"
)

type Get struct {
	ShowID bool

	// Search narrows to events containing the string in title or
	// description. Priority narrows further; event.All disables it.
	Search   string
	Priority event.Priority

	// Completed selects which partition to print; empty prints both.
	Completed string

	Store *store.Store
}

func (n *Get) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not get, no store")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	sorted := query.SortChronological(n.Store.List())
	filtered := query.Filter{Search: n.Search, Priority: n.Priority}.Apply(sorted)
	upcoming, completed := query.Partition(filtered)

	switch n.Completed {
	case "only":
		pp.TitleWithCount("Completed", len(completed))
		pp.Events(completed...)
	case "none":
		pp.TitleWithCount("Upcoming", len(upcoming))
		pp.Events(upcoming...)
	default:
		pp.TitleWithCount("Upcoming", len(upcoming))
		pp.Events(upcoming...)
		pp.TitleWithCount("Completed", len(completed))
		pp.Events(completed...)
	}

	return nil
}
