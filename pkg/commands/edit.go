package commands

import (
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/ironlist/pkg/commands/options"
	"tableflip.dev/ironlist/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command, r *root) {
	var (
		index int
		line  string
	)

	cmd := &cobra.Command{
		Use:   "edit INDEX LINE",
		Short: "Replace an entry.",
		Long: base.Wrap80("Replace the entry numbered INDEX, as numbered by list with the " +
			"same --show-all, by LINE. The file is rewritten in canonical form."),
		Example: `
ironlist edit 2 "2025-01-12    Buy oat milk    home"
ironlist edit --show-all 5 "2025-01-03    Taxes    complete"
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires an index and a quoted line")
			}
			var err error
			index, err = options.ParseIndex(args[0])
			line = args[1]
			return err
		},
		ValidArgsFunction: r.indexCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := r.persistence()
			if err != nil {
				return err
			}
			s := edit.Edit{
				Index:       index,
				Line:        line,
				ShowAll:     r.settings.ShowAll,
				Out:         r.out,
				Persistence: p,
			}
			return hint(s.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
