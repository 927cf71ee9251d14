package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/ironlist/pkg/runner/list"
)

func addList(topLevel *cobra.Command, r *root) {
	oo := &base.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List entries, oldest first.",
		Long: base.Wrap80("List the open entries sorted by date. With --show-all " +
			"completed entries follow in a second table. The numbers shown are the " +
			"ones edit and complete accept."),
		Example: `
ironlist list
ironlist list --show-all
ironlist list --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return r.list(cmd, oo)
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func (r *root) list(cmd *cobra.Command, oo *base.OutputOptions) error {
	p, err := r.persistence()
	if err != nil {
		return r.handleError(oo, err)
	}
	s := list.List{
		ShowAll:     r.settings.ShowAll,
		JSON:        oo.JSON,
		Width:       r.settings.Width,
		Out:         r.out,
		Persistence: p,
	}
	err = s.Do(cmd.Context())
	return r.handleError(oo, err)
}
