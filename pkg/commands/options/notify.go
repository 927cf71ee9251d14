package options

import (
	"github.com/spf13/cobra"
)

// NotifyOptions configure the notifier and its scheduled job.
type NotifyOptions struct {
	Time      string
	Interval  string
	Install   bool
	Uninstall bool
	Once      bool
	Watch     bool
}

// AddNotifyArgs registers the notify flags. Time and interval default to
// the config file values when unset.
func AddNotifyArgs(cmd *cobra.Command, o *NotifyOptions) {
	cmd.Flags().StringVar(&o.Time, "time", "",
		`Daily notification time in 24h HH:MM, default "09:00".`)
	cmd.Flags().StringVar(&o.Interval, "interval", "",
		`Notify every interval instead of daily, in minutes or like "1h30m".`)
	cmd.Flags().BoolVar(&o.Install, "install", false,
		"Register a scheduled job with the platform scheduler and exit.")
	cmd.Flags().BoolVar(&o.Uninstall, "uninstall", false,
		"Remove the scheduled job and exit.")
	cmd.Flags().BoolVar(&o.Once, "once", false,
		"Send one notification and exit.")
	cmd.Flags().BoolVar(&o.Watch, "watch", false,
		"Also notify when the backing file changes.")
}
