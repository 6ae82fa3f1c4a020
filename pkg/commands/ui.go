package commands

import (
	"github.com/spf13/cobra"

	teaui "tableflip.dev/agenda/pkg/runner/tea"
	"tableflip.dev/agenda/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the full-screen dashboard",
		Example: `
agenda ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			return teaui.Run(s)
		},
	}

	topLevel.AddCommand(cmd)
}
