package options

import (
	"github.com/spf13/cobra"
)

// EventOptions
type EventOptions struct {
	Date        string
	Time        string
	Description string
	Priority    string
}

func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		"Date of the event, YYYY-MM-DD. Defaults to today.")
	cmd.Flags().StringVarP(&o.Time, "time", "t", "",
		"Time of the event, HH:MM (24 hour).")
	cmd.Flags().StringVarP(&o.Description, "description", "m", "",
		"Free-form description of the event.")
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "",
		"Priority of the event, one of low, medium, high. Defaults to medium.")
}
