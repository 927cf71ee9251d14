// Package list provides the runner that prints the backing file.
package list

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/ironlist/pkg/printers"
	"tableflip.dev/ironlist/pkg/store"
)

// List prints every visible entry.
type List struct {
	ShowAll     bool
	JSON        bool
	Width       int
	Out         io.Writer
	Persistence store.Persistence
}

// Do loads the entries and prints them.
func (n *List) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list, no persistence")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	all, err := n.Persistence.ListAll(ctx)
	if err != nil {
		return err
	}
	return printers.Print(out, all, all, n.ShowAll, n.JSON, n.Width)
}
