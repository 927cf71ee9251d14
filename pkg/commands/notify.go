package commands

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/ironlist/pkg/commands/options"
	"tableflip.dev/ironlist/pkg/notify"
	rnotify "tableflip.dev/ironlist/pkg/runner/notify"
	"tableflip.dev/ironlist/pkg/timeutil"
)

func addNotify(topLevel *cobra.Command, r *root) {
	no := &options.NotifyOptions{}

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Send desktop notifications of upcoming entries.",
		Long: base.Wrap80("Stay in the foreground and send a summary of open entries dated " +
			"today or later, daily at --time or every --interval. The file " +
			"is read again before every notification. --install registers the same " +
			"schedule with systemd, launchd or the Windows task scheduler instead."),
		Example: `
ironlist notify --time 08:30
ironlist notify --interval 60 --watch
ironlist notify --interval 2h
ironlist notify --once
ironlist notify --install --time 08:30
ironlist notify --uninstall
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			at := no.Time
			if at == "" {
				at = r.settings.NotifyTime
			}
			clock, err := notify.ParseClock(at)
			if err != nil {
				return err
			}
			raw := no.Interval
			if !cmd.Flags().Changed("interval") {
				raw = r.settings.NotifyInterval
			}
			interval, err := timeutil.ParseInterval(raw)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			s := rnotify.Notify{
				At:        clock,
				Interval:  interval,
				Once:      no.Once,
				Watch:     no.Watch,
				Install:   no.Install,
				Uninstall: no.Uninstall,
				Log:       r.log,
				Out:       r.out,
			}

			if no.Install {
				// The job runs outside this shell, so it gets an absolute
				// path when one is known.
				if path, err := r.backingFile(); err == nil {
					if abs, err := filepath.Abs(path); err == nil {
						s.File = abs
					}
				}
			} else if !no.Uninstall {
				if s.Persistence, err = r.persistence(); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return s.Do(ctx)
		},
	}

	options.AddNotifyArgs(cmd, no)
	topLevel.AddCommand(cmd)
}
