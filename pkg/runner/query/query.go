// Package query provides the runner that prints entries matching a filter.
package query

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/ironlist/pkg/filter"
	"tableflip.dev/ironlist/pkg/printers"
	"tableflip.dev/ironlist/pkg/store"
)

// Query prints the entries matching Filter.
type Query struct {
	Filter      filter.Query
	ShowAll     bool
	JSON        bool
	Width       int
	Out         io.Writer
	Persistence store.Persistence
}

// Do rejects a query without criteria before reading the file.
func (n *Query) Do(ctx context.Context) error {
	if err := n.Filter.Validate(); err != nil {
		return err
	}
	if n.Persistence == nil {
		return errors.New("can not query, no persistence")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	all, err := n.Persistence.ListAll(ctx)
	if err != nil {
		return err
	}
	return printers.Print(out, all, n.Filter.Run(all), n.ShowAll, n.JSON, n.Width)
}
