package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/ironlist/pkg/commands/options"
	"tableflip.dev/ironlist/pkg/runner/query"
)

func addQuery(topLevel *cobra.Command, r *root) {
	qo := &options.QueryOptions{}
	oo := &base.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "query",
		Short: "List entries matching dates or tags.",
		Long: base.Wrap80("List entries within a date range, on a date, or carrying tags. " +
			"Tags match case insensitively; all of them must match unless --any is set. " +
			"At least one criterion is required."),
		Example: `
ironlist query --from 2025-01-01 --to 2025-01-31
ironlist query --date 2025-01-10
ironlist query --tag work --tag urgent
ironlist query --tag home --tag errand --any
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := qo.Query()
			if err != nil {
				return err
			}
			if err := q.Validate(); err != nil {
				return err
			}
			cmd.SilenceUsage = true

			p, err := r.persistence()
			if err != nil {
				return r.handleError(oo, err)
			}
			s := query.Query{
				Filter:      q,
				ShowAll:     r.settings.ShowAll,
				JSON:        oo.JSON,
				Width:       r.settings.Width,
				Out:         r.out,
				Persistence: p,
			}
			err = s.Do(cmd.Context())
			return r.handleError(oo, err)
		},
	}

	options.AddQueryArgs(cmd, qo)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
