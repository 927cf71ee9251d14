package commands

import (
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/ironlist/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command, r *root) {
	var line string

	cmd := &cobra.Command{
		Use:   "add LINE",
		Short: "Append an entry.",
		Long: base.Wrap80("Validate LINE and append it in canonical, tab separated form. " +
			"The file and its directory are created when missing."),
		Example: `
ironlist add "2025-01-10    Buy milk    home,errand"
ironlist add "$(printf '2025-01-11\tCall mom')"
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one quoted line")
			}
			line = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := r.persistence()
			if err != nil {
				return err
			}
			s := add.Add{
				Line:        line,
				Out:         r.out,
				Persistence: p,
			}
			return hint(s.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
