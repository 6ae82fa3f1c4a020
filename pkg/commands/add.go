package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/add"
	"tableflip.dev/agenda/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	io := &options.IDOptions{}

	var title string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an event",
		Example: `
agenda add "Team Meeting" --date=2024-03-26 --time=14:00 --priority=medium
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an event title")
			}
			title = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Load(nil)
			if err != nil {
				return err
			}

			r := add.Add{
				Title:       title,
				Date:        eo.Date,
				Time:        eo.Time,
				Description: eo.Description,
				Priority:    eo.Priority,
				ShowID:      io.ShowID,
				Store:       s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddEventArgs(cmd, eo)
	options.AddShowIDArgs(cmd, io)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
