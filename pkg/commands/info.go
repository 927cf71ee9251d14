package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/ironlist/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command, r *root) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the configuration and the backing file.",
		Example: `
ironlist info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s := info.Info{
				Settings: r.settings,
				Defaults: r.defaults,
				Out:      r.out,
			}
			// info never prompts for a missing file.
			if r.settings.File != "" || hasDefault(r) {
				p, err := r.persistence()
				if err != nil && !errors.Is(err, ErrNoFile) {
					return err
				}
				s.Persistence = p
			}
			return s.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

func hasDefault(r *root) bool {
	_, ok, err := r.defaults.Load()
	return ok && err == nil
}
