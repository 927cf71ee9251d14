package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/ironlist/pkg/commands/options"
	"tableflip.dev/ironlist/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command, r *root) {
	var index int

	cmd := &cobra.Command{
		Use:     "complete INDEX",
		Aliases: []string{"done"},
		Short:   "Mark an entry complete.",
		Example: `
ironlist complete 1
ironlist done 3
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an entry index")
			}
			var err error
			index, err = options.ParseIndex(args[0])
			return err
		},
		ValidArgsFunction: r.indexCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := r.persistence()
			if err != nil {
				return err
			}
			s := complete.Complete{
				Index:       index,
				ShowAll:     r.settings.ShowAll,
				Out:         r.out,
				Persistence: p,
			}
			return s.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
