package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/ironlist/pkg/printers"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     "Generates shell completion scripts",
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return err
			}
			return cobra.OnlyValidArgs(cmd, args)
		},
		Long: `To load completion run

. <(ironlist completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(ironlist completion)
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := "bash"
			if len(args) > 0 {
				shell = args[0]
			}
			out := cmd.OutOrStdout()
			switch shell {
			case "zsh":
				return topLevel.GenZshCompletion(out)
			case "fish":
				return topLevel.GenFishCompletion(out, true)
			case "powershell":
				return topLevel.GenPowerShellCompletion(out)
			default:
				return topLevel.GenBashCompletion(out)
			}
		},
	}

	topLevel.AddCommand(cmd)
}

// indexCompletions offers the visible entry numbers with their descriptions.
func (r *root) indexCompletions(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	if r.settings == nil {
		if err := r.setup(cmd); err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
	}
	if r.settings.File == "" {
		if _, ok, err := r.defaults.Load(); !ok || err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
	}
	p, err := r.persistence()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	all, err := p.ListAll(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, row := range printers.Rows(all, all, r.settings.ShowAll) {
		out = append(out, fmt.Sprintf("%s\t%s", strconv.Itoa(row.Number), row.Entry.Description))
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
