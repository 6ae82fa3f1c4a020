package options

import (
	"github.com/spf13/cobra"
)

// FilterOptions
type FilterOptions struct {
	Search    string
	Priority  string
	Completed string
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Only show events whose title or description contains this text.")
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "all",
		"Only show events with this priority, one of low, medium, high, all.")
	cmd.Flags().StringVarP(&o.Completed, "completed", "c", "",
		"Set to 'only' to show only completed events, 'none' to hide them.")
}
