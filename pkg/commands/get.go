package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/runner/get"
	"tableflip.dev/agenda/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"list", "ls"},
		Short:   "Get events in chronological order",
		Example: `
agenda get
agenda get --search=meeting
agenda get --priority=high --completed=none
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			s, err := store.Load(cfg)
			if err != nil {
				return err
			}

			// The config's default filter applies unless the flag was set.
			priority := fo.Priority
			if !cmd.Flags().Changed("priority") {
				priority = cfg.Priority
			}
			p, err := event.ParseFilter(priority)
			if err != nil {
				return err
			}

			r := get.Get{
				ShowID:    io.ShowID,
				Search:    fo.Search,
				Priority:  p,
				Completed: fo.Completed,
				Store:     s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
