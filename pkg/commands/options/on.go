package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/event"
)

// OnOptions
type OnOptions struct {
	On string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVarP(&o.On, "on", "o", "",
		"Date to show, YYYY-MM-DD. Defaults to today.")
}

// Day resolves the flag to a concrete day, today when unset.
func (o *OnOptions) Day() (time.Time, error) {
	if o.On == "" {
		return event.Today(), nil
	}
	return event.ParseDate(o.On)
}
