// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// FileOptions are the persistent flags every command shares.
type FileOptions struct {
	File     string
	ShowAll  bool
	Config   string
	LogLevel string
}

// AddFileArgs registers the persistent flags on the root command.
func AddFileArgs(cmd *cobra.Command, o *FileOptions) {
	cmd.PersistentFlags().StringVarP(&o.File, "file", "f", "",
		"Backing file. Overrides IRONLIST_FILE, the config file and the saved default.")
	cmd.PersistentFlags().BoolVar(&o.ShowAll, "show-all", false,
		"Include completed entries. Numbering then counts them too.")
	cmd.PersistentFlags().StringVar(&o.Config, "config", "",
		"Config file, default is .ironlist in IRONLIST_CONFIG_PATH, home or the current directory.")
	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "",
		"Log level, one of debug, info, warn or error.")
}

// DefaultOptions manage the saved default backing file.
type DefaultOptions struct {
	Set  string
	Show bool
}

// AddDefaultArgs registers the default path flags.
func AddDefaultArgs(cmd *cobra.Command, o *DefaultOptions) {
	cmd.Flags().StringVar(&o.Set, "set-default", "",
		`Save PATH as the default backing file, "-" clears it.`)
	cmd.Flags().BoolVar(&o.Show, "show-default", false,
		"Print the saved default backing file.")
}

// Requested reports whether a default path operation was asked for.
func (o *DefaultOptions) Requested() bool {
	return o.Set != "" || o.Show
}
