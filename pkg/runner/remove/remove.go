package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/agenda/pkg/store"
)

type Remove struct {
	ID    string
	Store *store.Store
}

// Do deletes the event. A missing id is not an error; delete is idempotent
// so a stale view can retry safely.
func (n *Remove) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not remove, no store")
	}

	if n.Store.Delete(n.ID) {
		fmt.Printf("removed %s\n", n.ID)
	} else {
		fmt.Printf("nothing to remove for %s\n", n.ID)
	}
	return nil
}
