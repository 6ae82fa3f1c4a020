package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/calendar"
	"tableflip.dev/agenda/pkg/store"
)

func addCalendar(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show the month with a day's schedule",
		Example: `
agenda calendar
agenda calendar --on=2024-03-26
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Load(nil)
			if err != nil {
				return err
			}

			on, err := oo.Day()
			if err != nil {
				return err
			}

			r := calendar.Calendar{
				On:     &on,
				ShowID: io.ShowID,
				Store:  s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
