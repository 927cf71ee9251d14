package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/ironlist/pkg/entry"
	"tableflip.dev/ironlist/pkg/filter"
)

// QueryOptions hold the query criteria as given on the command line.
type QueryOptions struct {
	From string
	To   string
	Date string
	Tags []string
	Any  bool
}

// AddQueryArgs registers the query criteria flags.
func AddQueryArgs(cmd *cobra.Command, o *QueryOptions) {
	cmd.Flags().StringVar(&o.From, "from", "",
		`Earliest date, inclusive, example: --from="2025-01-01".`)
	cmd.Flags().StringVar(&o.To, "to", "",
		`Latest date, inclusive, example: --to="2025-01-31".`)
	cmd.Flags().StringVar(&o.Date, "date", "",
		"Exact date. Overrides --from and --to.")
	cmd.Flags().StringArrayVarP(&o.Tags, "tag", "t", nil,
		"Tag to match, case insensitive. Repeat for more tags.")
	cmd.Flags().BoolVar(&o.Any, "any", false,
		"Match entries with any of the tags instead of all of them.")
}

// Query parses the dates and builds the filter. An unparsable date is an
// error.
func (o *QueryOptions) Query() (filter.Query, error) {
	q := filter.Query{Tags: o.Tags, Any: o.Any}
	if o.Date != "" {
		d, err := parseDate("date", o.Date)
		if err != nil {
			return q, err
		}
		q.From, q.To = d, d
		return q, nil
	}
	var err error
	if q.From, err = parseDate("from", o.From); err != nil {
		return q, err
	}
	if q.To, err = parseDate("to", o.To); err != nil {
		return q, err
	}
	return q, nil
}

func parseDate(flag, v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := entry.ParseDate(v)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q, expected YYYY-MM-DD", flag, v)
	}
	return &t, nil
}
